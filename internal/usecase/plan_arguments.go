package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// PlanArguments is the use case behind `hyperkit plan`: resolve the
// contract, load its compiled constructor interface, scan its source,
// reconcile the two into an argument plan, and encode the plan into
// constructor calldata.
type PlanArguments struct {
	config     *config.RuntimeConfig
	resolver   *ResolveContract
	artifacts  ArtifactRepository
	reconciler ArgumentReconciler
	encoder    ArgumentEncoder
	sink       ProgressSink
	log        *slog.Logger
}

// NewPlanArguments creates a new PlanArguments use case
func NewPlanArguments(
	cfg *config.RuntimeConfig,
	resolver *ResolveContract,
	artifacts ArtifactRepository,
	reconciler ArgumentReconciler,
	encoder ArgumentEncoder,
	sink ProgressSink,
	log *slog.Logger,
) *PlanArguments {
	return &PlanArguments{
		config:     cfg,
		resolver:   resolver,
		artifacts:  artifacts,
		reconciler: reconciler,
		encoder:    encoder,
		sink:       sink,
		log:        log,
	}
}

// PlanArgumentsParams are the inputs for one planning run.
type PlanArgumentsParams struct {
	ContractRef string
	Overrides   []string
}

// PlanResult is the outcome of a planning run.
type PlanResult struct {
	Contract  *models.Contract
	Interface domain.ContractInterface
	Plan      *domain.ArgumentPlan
	Calldata  []byte
}

// Run executes the planning flow.
func (uc *PlanArguments) Run(ctx context.Context, params PlanArgumentsParams) (*PlanResult, error) {
	contract, err := uc.resolver.Run(ctx, params.ContractRef)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "planning",
		Message: fmt.Sprintf("Planning constructor arguments for %s", contract.Name),
		Spinner: true,
	})

	contractABI, err := uc.artifacts.LoadABI(ctx, contract)
	if err != nil {
		return nil, err
	}
	iface := domain.NewContractInterface(contractABI.Constructor.Inputs)

	sourceText, err := uc.artifacts.ReadSource(ctx, contract)
	if err != nil {
		// Source is a best-effort signal; the compiled interface still
		// produces a valid plan.
		uc.log.Warn("failed to read contract source", "contract", contract.Name, "error", err)
		sourceText = ""
	}

	plan, err := uc.reconciler.Reconcile(iface, sourceText, params.Overrides)
	if err != nil {
		return nil, err
	}

	calldata, err := uc.encoder.Encode(iface, plan)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "planned"})
	uc.log.Debug("argument plan ready",
		"contract", contract.Name,
		"arity", plan.Arity(),
		"confidence", plan.Confidence)

	return &PlanResult{
		Contract:  contract,
		Interface: iface,
		Plan:      plan,
		Calldata:  calldata,
	}, nil
}
