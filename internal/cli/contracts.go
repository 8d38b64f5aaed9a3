package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperkit-labs/hyperkit/internal/cli/render"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts [query]",
		Short: "List compiled contracts in the project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := appFromContext(cmd)
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			result, err := appInstance.ListContracts.Run(cmd.Context(), query)
			if err != nil {
				return err
			}

			var renderer render.Renderer[*usecase.ContractListResult] = render.NewContractsRenderer(os.Stdout, appInstance.Config.JSON)
			return renderer.Render(result)
		},
	}
}
