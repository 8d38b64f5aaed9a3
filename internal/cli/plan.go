package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperkit-labs/hyperkit/internal/cli/render"
	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	var (
		argOverrides []string
		argsFile     string
	)

	cmd := &cobra.Command{
		Use:   "plan <contract>",
		Short: "Reconcile and display constructor arguments for a contract",
		Long: `Plan resolves a contract, reconciles its compiled constructor interface
with its source text, and prints the resulting argument plan with full
per-value provenance and the encoded constructor calldata.

Overrides are positional and must cover every constructor parameter:

  hyperkit plan MyToken --arg 0x5FbD...aa3 --arg 1000000 --arg '"MyToken"'
  hyperkit plan MyToken --args-file args.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := appFromContext(cmd)
			if err != nil {
				return err
			}

			overrides, err := collectOverrides(argOverrides, argsFile)
			if err != nil {
				return err
			}

			result, err := appInstance.PlanArguments.Run(cmd.Context(), usecase.PlanArgumentsParams{
				ContractRef: args[0],
				Overrides:   overrides,
			})
			if err != nil {
				return err
			}

			var renderer render.Renderer[*usecase.PlanResult] = render.NewPlanRenderer(os.Stdout, appInstance.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringArrayVar(&argOverrides, "arg", nil, "Constructor argument override (repeatable, positional)")
	cmd.Flags().StringVar(&argsFile, "args-file", "", "YAML file with constructor argument overrides")

	return cmd
}

// collectOverrides merges the --arg and --args-file sources; both at
// once is ambiguous and refused.
func collectOverrides(args []string, argsFile string) ([]string, error) {
	if len(args) > 0 && argsFile != "" {
		return nil, fmt.Errorf("--arg and --args-file are mutually exclusive")
	}
	if argsFile != "" {
		return config.LoadArgsFile(argsFile)
	}
	return args, nil
}
