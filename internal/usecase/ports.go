package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// ContractRepository provides access to compiled contracts. Errors are
// index failures (e.g. no artifact directory); a reference that simply
// matches nothing is a nil contract or empty slice, not an error.
type ContractRepository interface {
	SearchContracts(ctx context.Context, query string) ([]*models.Contract, error)
	GetContractByArtifact(ctx context.Context, artifact string) (*models.Contract, error)
	AllContracts(ctx context.Context) ([]*models.Contract, error)
}

// ArtifactRepository reads compiled artifacts and contract sources
type ArtifactRepository interface {
	LoadABI(ctx context.Context, contract *models.Contract) (*abi.ABI, error)
	ReadSource(ctx context.Context, contract *models.Contract) (string, error)
}

// ContractSelector handles interactive disambiguation
type ContractSelector interface {
	SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error)
}

// ArgumentReconciler produces a validated argument plan from the
// compiled interface, the contract source, and optional user overrides
type ArgumentReconciler interface {
	Reconcile(iface domain.ContractInterface, sourceText string, overrides []string) (*domain.ArgumentPlan, error)
}

// ArgumentEncoder packs an argument plan into constructor calldata
type ArgumentEncoder interface {
	Encode(iface domain.ContractInterface, plan *domain.ArgumentPlan) ([]byte, error)
}

// DeploymentSubmitter submits a planned deployment and reports the
// discriminated outcome
type DeploymentSubmitter interface {
	Submit(ctx context.Context, contract *models.Contract, plan *domain.ArgumentPlan) (domain.DeploymentOutcome, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
