//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/hyperkit-labs/hyperkit/internal/adapters/artifacts"
	"github.com/hyperkit-labs/hyperkit/internal/adapters/contracts"
	"github.com/hyperkit-labs/hyperkit/internal/adapters/encoder"
	"github.com/hyperkit-labs/hyperkit/internal/adapters/forge"
	"github.com/hyperkit-labs/hyperkit/internal/adapters/interactive"
	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/logging"
	"github.com/hyperkit-labs/hyperkit/internal/reconcile"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		contracts.NewIndexer,
		wire.Bind(new(usecase.ContractRepository), new(*contracts.Indexer)),
		artifacts.NewLoader,
		wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Loader)),
		interactive.NewSelector,
		wire.Bind(new(usecase.ContractSelector), new(*interactive.Selector)),
		encoder.New,
		wire.Bind(new(usecase.ArgumentEncoder), new(*encoder.Encoder)),
		forge.NewDeployer,
		wire.Bind(new(usecase.DeploymentSubmitter), new(*forge.Deployer)),

		// Core
		reconcile.New,
		wire.Bind(new(usecase.ArgumentReconciler), new(*reconcile.Reconciler)),

		// Use cases
		usecase.NewResolveContract,
		usecase.NewPlanArguments,
		usecase.NewDeployContract,
		usecase.NewListContracts,

		// App
		NewApp,
	)
	return nil, nil
}
