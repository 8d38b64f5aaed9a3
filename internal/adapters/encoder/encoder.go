// Package encoder ABI-encodes reconciled argument plans into the
// constructor calldata appended to a contract's creation bytecode.
package encoder

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
)

// Encoder packs argument plans with go-ethereum's ABI encoder.
type Encoder struct{}

// New creates an encoder.
func New() *Encoder {
	return &Encoder{}
}

// Encode packs the plan's values in order. The plan length is validated
// against the interface before this is ever called, so a pack failure
// here means a value had the wrong Go representation for its type.
func (e *Encoder) Encode(iface domain.ContractInterface, plan *domain.ArgumentPlan) ([]byte, error) {
	if plan.Arity() == 0 {
		return nil, nil
	}

	values := lo.Map(plan.Values, func(v domain.ArgumentValue, _ int) any {
		return v.Value
	})

	packed, err := iface.Arguments().Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}
	return packed, nil
}
