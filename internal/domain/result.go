package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DeploymentOutcome is the discriminated result of a deployment
// submission. Callers must type-switch on the concrete outcome; there is
// no status string to misread, so a failed deployment can never be
// reported as a success by accident.
type DeploymentOutcome interface {
	outcome()
}

// Deployed is the success outcome of a deployment submission.
type Deployed struct {
	Address  common.Address
	TxHash   common.Hash
	Deployer common.Address
}

func (Deployed) outcome() {}

func (d Deployed) String() string {
	return fmt.Sprintf("deployed at %s (tx %s)", d.Address.Hex(), d.TxHash.Hex())
}

// DeploymentFailed is the failure outcome. Reason is a human-readable
// explanation; Output carries the raw submitter output for debugging.
type DeploymentFailed struct {
	Reason string
	Output string
}

func (DeploymentFailed) outcome() {}

func (f DeploymentFailed) String() string {
	return fmt.Sprintf("deployment failed: %s", f.Reason)
}
