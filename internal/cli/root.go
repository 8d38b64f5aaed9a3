package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hyperkit-labs/hyperkit/internal/adapters/progress"
	"github.com/hyperkit-labs/hyperkit/internal/app"
	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// Execute runs the CLI. The run's timeout context is released here
// rather than in a post-run hook: cobra skips post-run hooks when a
// command fails, and the release must happen on every path.
func Execute() error {
	var cancel context.CancelFunc
	defer func() {
		if cancel != nil {
			cancel()
		}
	}()
	return newRootCmd(&cancel).Execute()
}

// newRootCmd creates the root command. A timeout context's cancel, when
// one is set up, is stored through cancelOut for the caller to release.
func newRootCmd(cancelOut *context.CancelFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperkit",
		Short: "Constructor argument planner and deployer for Foundry projects",
		Long: `HyperKit reconciles a contract's compiled constructor interface with its
source text to produce a validated, fully attributed argument plan before
any deployment transaction is submitted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd.Flags())

			var sink usecase.ProgressSink
			if v.GetBool("json") || v.GetBool("non_interactive") {
				sink = progress.NewNopSink()
			} else {
				sink = progress.NewSpinnerSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				ctx, *cancelOut = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (name from rpc_endpoints, or a raw URL)")
	rootCmd.PersistentFlags().StringP("profile", "p", "default", "Foundry profile")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for the command run")

	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewDeployCmd())
	rootCmd.AddCommand(NewContractsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags copies set flags into viper, where the config provider
// reads them.
func bindGlobalFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flagToKey := map[string]string{
		"debug":           "debug",
		"json":            "json",
		"non-interactive": "non_interactive",
		"network":         "network",
		"profile":         "profile",
		"timeout":         "timeout",
		"dry-run":         "dry_run",
	}

	for flag, key := range flagToKey {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}

// appFromContext retrieves the initialized app from the command context.
func appFromContext(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return appInstance, nil
}
