package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

var (
	contractStyle   = color.New(color.Bold, color.FgHiWhite)
	provenanceStyle = color.New(color.FgCyan)
	agreementStyle  = color.New(color.FgGreen)
	mismatchStyle   = color.New(color.FgYellow)
	calldataStyle   = color.New(color.Faint)
)

// PlanRenderer renders argument plans as a table, or as JSON in machine
// mode.
type PlanRenderer struct {
	out  io.Writer
	json bool
}

// NewPlanRenderer creates a plan renderer.
func NewPlanRenderer(out io.Writer, jsonOutput bool) *PlanRenderer {
	return &PlanRenderer{out: out, json: jsonOutput}
}

// planJSON is the machine-readable plan document.
type planJSON struct {
	Contract   string    `json:"contract"`
	Signature  string    `json:"signature"`
	Confidence string    `json:"confidence"`
	Arguments  []argJSON `json:"arguments"`
	Warnings   []string  `json:"warnings,omitempty"`
	Calldata   string    `json:"calldata"`
}

type argJSON struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Value      string `json:"value"`
	Provenance string `json:"provenance"`
}

// Render displays a planning result.
func (r *PlanRenderer) Render(result *usecase.PlanResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	fmt.Fprintf(r.out, "%s %s\n\n",
		contractStyle.Sprint(result.Contract.Name),
		result.Interface.Signature())

	if result.Plan.Arity() == 0 {
		fmt.Fprintln(r.out, "No constructor arguments required")
	} else {
		r.renderTable(result.Plan)
	}

	for _, warning := range result.Plan.Report.Warnings {
		fmt.Fprintln(r.out, FormatWarning(warning))
	}

	confidence := agreementStyle
	if result.Plan.Confidence == domain.ConfidenceMismatch {
		confidence = mismatchStyle
	}
	fmt.Fprintf(r.out, "\nConfidence: %s\n", confidence.Sprint(Label(string(result.Plan.Confidence))))

	if len(result.Calldata) > 0 {
		fmt.Fprintf(r.out, "Calldata:   %s\n", calldataStyle.Sprint(hexutil.Encode(result.Calldata)))
	}
	return nil
}

func (r *PlanRenderer) renderTable(plan *domain.ArgumentPlan) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Parameter", "Type", "Value", "Provenance"})

	for i, v := range plan.Values {
		t.AppendRow(table.Row{
			i,
			v.Name,
			v.Type,
			v.Display,
			provenanceStyle.Sprint(Label(string(v.Provenance))),
		})
	}
	t.Render()
}

func (r *PlanRenderer) renderJSON(result *usecase.PlanResult) error {
	doc := planJSON{
		Contract:   result.Contract.ArtifactRef(),
		Signature:  result.Interface.Signature(),
		Confidence: string(result.Plan.Confidence),
		Warnings:   result.Plan.Report.Warnings,
		Calldata:   hexutil.Encode(result.Calldata),
		Arguments: lo.Map(result.Plan.Values, func(v domain.ArgumentValue, _ int) argJSON {
			return argJSON{
				Name:       v.Name,
				Type:       v.Type,
				Value:      v.Display,
				Provenance: string(v.Provenance),
			}
		}),
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
