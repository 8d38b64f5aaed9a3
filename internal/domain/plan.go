package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Provenance records which signal produced a constructor argument value.
type Provenance string

const (
	ProvenanceUserSupplied      Provenance = "user-supplied"
	ProvenanceSourceDerived     Provenance = "source-derived"
	ProvenanceInterfaceFallback Provenance = "interface-fallback"
)

// Confidence summarizes whether the compiled interface and the source
// scan agreed on the constructor signature.
type Confidence string

const (
	ConfidenceAgreement Confidence = "agreement"
	ConfidenceMismatch  Confidence = "mismatch"
)

// ConstructorParam is one declared constructor parameter from the
// compiled interface. Name may be empty for unnamed parameters.
type ConstructorParam struct {
	Name string
	Type abi.Type
}

// ContractInterface is the compiled contract's constructor signature, in
// declaration order. It is built once from the artifact ABI and never
// mutated.
type ContractInterface struct {
	Params []ConstructorParam

	args abi.Arguments
}

// NewContractInterface builds a ContractInterface from compiled
// constructor inputs. A contract without a constructor yields a
// zero-arity interface.
func NewContractInterface(inputs abi.Arguments) ContractInterface {
	params := make([]ConstructorParam, len(inputs))
	for i, input := range inputs {
		params[i] = ConstructorParam{Name: input.Name, Type: input.Type}
	}
	return ContractInterface{Params: params, args: inputs}
}

// Arity returns the declared constructor parameter count.
func (ci ContractInterface) Arity() int {
	return len(ci.Params)
}

// Arguments returns the underlying ABI arguments for encoding.
func (ci ContractInterface) Arguments() abi.Arguments {
	return ci.args
}

// Signature renders the canonical type list, e.g. "(address,uint256)".
func (ci ContractInterface) Signature() string {
	types := make([]string, len(ci.Params))
	for i, p := range ci.Params {
		types[i] = p.Type.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(types, ","))
}

// ArgumentValue is one reconciled constructor argument. Value is a Go
// value acceptable to abi.Arguments.Pack for the declared type.
type ArgumentValue struct {
	Name       string
	Type       string
	Value      any
	Display    string
	Provenance Provenance
}

// ArgumentPlan is the ordered argument list for one deployment attempt.
// Its length always equals the interface arity; reconciliation fails
// rather than producing a partial plan.
type ArgumentPlan struct {
	Values     []ArgumentValue
	Confidence Confidence
	Report     *ReconciliationReport
}

// Arity returns the number of planned arguments.
func (p *ArgumentPlan) Arity() int {
	if p == nil {
		return 0
	}
	return len(p.Values)
}
