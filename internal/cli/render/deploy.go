package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// DeployRenderer renders deployment results. The outcome is a
// discriminated type; rendering type-switches on it and refuses to
// guess, so an unknown outcome is an error rather than a fake success.
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a deploy renderer.
func NewDeployRenderer(out io.Writer, jsonOutput bool) *DeployRenderer {
	return &DeployRenderer{out: out, json: jsonOutput}
}

type deployJSON struct {
	Contract string `json:"contract"`
	Status   string `json:"status"`
	Address  string `json:"address,omitempty"`
	TxHash   string `json:"txHash,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Calldata string `json:"calldata"`
}

// Render displays a deployment result.
func (r *DeployRenderer) Render(result *usecase.DeployResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	if result.DryRun {
		fmt.Fprintf(r.out, "Dry run: %s not submitted\n", result.Contract.Name)
		fmt.Fprintf(r.out, "Constructor calldata: %s\n", hexutil.Encode(result.Calldata))
		return nil
	}

	switch outcome := result.Outcome.(type) {
	case domain.Deployed:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed at %s", result.Contract.Name, outcome.Address.Hex())))
		fmt.Fprintf(r.out, "   Transaction: %s\n", outcome.TxHash.Hex())
		return nil
	case domain.DeploymentFailed:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s deployment failed: %s", result.Contract.Name, outcome.Reason)))
		if outcome.Output != "" {
			fmt.Fprintln(r.out, outcome.Output)
		}
		return fmt.Errorf("deployment failed: %s", outcome.Reason)
	default:
		return fmt.Errorf("unknown deployment outcome %T", result.Outcome)
	}
}

func (r *DeployRenderer) renderJSON(result *usecase.DeployResult) error {
	doc := deployJSON{
		Contract: result.Contract.ArtifactRef(),
		Calldata: hexutil.Encode(result.Calldata),
	}

	switch outcome := result.Outcome.(type) {
	case domain.Deployed:
		doc.Status = "deployed"
		doc.Address = outcome.Address.Hex()
		doc.TxHash = outcome.TxHash.Hex()
	case domain.DeploymentFailed:
		doc.Status = "failed"
		doc.Reason = outcome.Reason
	default:
		if result.DryRun {
			doc.Status = "dry-run"
			break
		}
		return fmt.Errorf("unknown deployment outcome %T", result.Outcome)
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if doc.Status == "failed" {
		return fmt.Errorf("deployment failed: %s", doc.Reason)
	}
	return nil
}
