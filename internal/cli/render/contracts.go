package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// ContractsRenderer renders the compiled contract index.
type ContractsRenderer struct {
	out  io.Writer
	json bool
}

// NewContractsRenderer creates a contracts renderer.
func NewContractsRenderer(out io.Writer, jsonOutput bool) *ContractsRenderer {
	return &ContractsRenderer{out: out, json: jsonOutput}
}

// Render displays the contract list.
func (r *ContractsRenderer) Render(result *usecase.ContractListResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Contracts)
	}

	if len(result.Contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Source"})
	for _, contract := range result.Contracts {
		t.AppendRow(table.Row{contract.Name, contract.Path})
	}
	t.Render()
	return nil
}
