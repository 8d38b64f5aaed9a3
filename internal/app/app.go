package app

import (
	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	PlanArguments   *usecase.PlanArguments
	DeployContract  *usecase.DeployContract
	ListContracts   *usecase.ListContracts
	ResolveContract *usecase.ResolveContract
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	planArguments *usecase.PlanArguments,
	deployContract *usecase.DeployContract,
	listContracts *usecase.ListContracts,
	resolveContract *usecase.ResolveContract,
) (*App, error) {
	return &App{
		Config:          cfg,
		PlanArguments:   planArguments,
		DeployContract:  deployContract,
		ListContracts:   listContracts,
		ResolveContract: resolveContract,
	}, nil
}
