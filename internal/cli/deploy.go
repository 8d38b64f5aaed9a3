package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperkit-labs/hyperkit/internal/cli/render"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		argOverrides []string
		argsFile     string
	)

	cmd := &cobra.Command{
		Use:   "deploy <contract>",
		Short: "Plan constructor arguments and deploy a contract via forge",
		Long: `Deploy reconciles constructor arguments exactly like plan, then submits
the deployment through forge create. Any fatal reconciliation error
aborts before a transaction is submitted. The submission result is
reported explicitly as deployed or failed; there is no silent success.`,
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

			result, err := appInstance.DeployContract.Run(cmd.Context(), usecase.PlanArgumentsParams{
				ContractRef: args[0],
				Overrides:   overrides,
			})
			if err != nil {
				return err
			}

			var renderer render.Renderer[*usecase.DeployResult] = render.NewDeployRenderer(os.Stdout, appInstance.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringArrayVar(&argOverrides, "arg", nil, "Constructor argument override (repeatable, positional)")
	cmd.Flags().StringVar(&argsFile, "args-file", "", "YAML file with constructor argument overrides")
	cmd.Flags().Bool("dry-run", false, "Stop after encoding; do not submit")

	return cmd
}
