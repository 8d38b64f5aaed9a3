package usecase

import (
	"context"
	"fmt"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
)

// DeployContract plans constructor arguments and submits the deployment.
// Any fatal reconciliation error aborts before anything is submitted.
type DeployContract struct {
	config    *config.RuntimeConfig
	plan      *PlanArguments
	submitter DeploymentSubmitter
	sink      ProgressSink
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	plan *PlanArguments,
	submitter DeploymentSubmitter,
	sink ProgressSink,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		plan:      plan,
		submitter: submitter,
		sink:      sink,
	}
}

// DeployResult carries the plan and, unless the run was a dry run, the
// discriminated submission outcome.
type DeployResult struct {
	*PlanResult

	// Outcome is nil only for dry runs. Callers must type-switch on the
	// concrete outcome; success is never implied.
	Outcome domain.DeploymentOutcome
	DryRun  bool
}

// Run plans and submits one deployment.
func (uc *DeployContract) Run(ctx context.Context, params PlanArgumentsParams) (*DeployResult, error) {
	planResult, err := uc.plan.Run(ctx, params)
	if err != nil {
		return nil, err
	}

	if uc.config.DryRun {
		return &DeployResult{PlanResult: planResult, DryRun: true}, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "deploying",
		Message: fmt.Sprintf("Deploying %s", planResult.Contract.Name),
		Spinner: true,
	})

	outcome, err := uc.submitter.Submit(ctx, planResult.Contract, planResult.Plan)
	if err != nil {
		return nil, err
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "submitted"})

	return &DeployResult{PlanResult: planResult, Outcome: outcome}, nil
}
