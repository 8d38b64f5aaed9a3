// Package forge submits deployments by shelling out to forge. The tool
// never talks to a node directly; forge owns transaction construction
// and broadcasting.
package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os/exec"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// Deployer runs `forge create` and maps its output to a
// domain.DeploymentOutcome. A rejected or reverted deployment is data
// (DeploymentFailed), not an error; errors are reserved for
// infrastructure problems like a missing forge binary.
type Deployer struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewDeployer creates a forge-backed deployment submitter.
func NewDeployer(cfg *config.RuntimeConfig, log *slog.Logger) *Deployer {
	return &Deployer{cfg: cfg, log: log}
}

// createReceipt mirrors the JSON object forge create prints on success.
type createReceipt struct {
	Deployer        string `json:"deployer"`
	DeployedTo      string `json:"deployedTo"`
	TransactionHash string `json:"transactionHash"`
}

// Submit deploys the contract with the plan's argument values.
func (d *Deployer) Submit(ctx context.Context, contract *models.Contract, plan *domain.ArgumentPlan) (domain.DeploymentOutcome, error) {
	args := []string{"create", contract.ArtifactRef(), "--json", "--broadcast"}
	if d.cfg.RPCURL != "" {
		args = append(args, "--rpc-url", d.cfg.RPCURL)
	}
	if d.cfg.PrivateKey != "" {
		args = append(args, "--private-key", d.cfg.PrivateKey)
	}
	if plan.Arity() > 0 {
		args = append(args, "--constructor-args")
		for _, v := range plan.Values {
			args = append(args, cliArgument(v))
		}
	}

	d.log.Debug("submitting deployment", "contract", contract.Name, "args", plan.Arity())

	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = d.cfg.ProjectRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.DeploymentFailed{
				Reason: fmt.Sprintf("forge create exited with code %d", exitErr.ExitCode()),
				Output: string(output),
			}, nil
		}
		return nil, fmt.Errorf("failed to run forge: %w", err)
	}

	return parseCreateOutput(output), nil
}

// parseCreateOutput scans forge output for the deployment receipt. A
// run that produced no complete receipt is a failure, regardless of the
// exit code.
func parseCreateOutput(output []byte) domain.DeploymentOutcome {
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var receipt createReceipt
		if err := json.Unmarshal([]byte(line), &receipt); err != nil {
			continue
		}
		if receipt.DeployedTo == "" || receipt.TransactionHash == "" {
			continue
		}

		return domain.Deployed{
			Address:  common.HexToAddress(receipt.DeployedTo),
			TxHash:   common.HexToHash(receipt.TransactionHash),
			Deployer: common.HexToAddress(receipt.Deployer),
		}
	}

	return domain.DeploymentFailed{
		Reason: "forge output contained no deployment receipt",
		Output: string(output),
	}
}

// cliArgument renders a plan value the way forge expects it on the
// command line: strings bare, addresses and bytes as hex, composites in
// forge's comma-separated bracket/paren syntax.
func cliArgument(v domain.ArgumentValue) string {
	return forgeValue(v.Value)
}

func forgeValue(v any) string {
	switch val := v.(type) {
	case common.Address:
		return val.Hex()
	case *big.Int:
		return val.String()
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []byte:
		return hexutil.Encode(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
		return forgeSequence(rv, "[", "]")
	case reflect.Slice:
		return forgeSequence(rv, "[", "]")
	case reflect.Struct:
		// ABI tuples arrive as generated structs; fields are in
		// declaration order.
		parts := make([]string, rv.NumField())
		for i := range parts {
			parts[i] = forgeValue(rv.Field(i).Interface())
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func forgeSequence(rv reflect.Value, open, close string) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = forgeValue(rv.Index(i).Interface())
	}
	return open + strings.Join(parts, ",") + close
}
