package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no compiled contract matches a query
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoConstructor is returned by the source scanner when the contract
	// source has no explicit constructor declaration
	ErrNoConstructor = errors.New("no constructor declaration found")

	// ErrNoArtifact is returned when a contract has no compiled artifact
	ErrNoArtifact = errors.New("no compiled artifact")
)

// ArityMismatchError is fatal: no signal could produce an argument plan
// whose length matches the compiled interface. It carries the full
// report so the caller can print exactly which signal disagreed.
type ArityMismatchError struct {
	Expected int
	Actual   int
	Report   *ReconciliationReport
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("constructor arity mismatch: expected %d argument(s), planned %d\n%s",
		e.Expected, e.Actual, e.Report)
}

// SourceParseError reports a failed constructor scan. It is recoverable:
// the reconciler logs it and falls back to the compiled interface.
type SourceParseError struct {
	Reason string
}

func (e *SourceParseError) Error() string {
	return fmt.Sprintf("constructor scan failed: %s", e.Reason)
}

// CoercionError reports a literal that could not be converted to its
// declared ABI type.
type CoercionError struct {
	Param   string
	Type    string
	Literal string
	Err     error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %q for parameter %s (%s): %v", e.Literal, e.Param, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// AmbiguousContractErr is returned in non-interactive mode when several
// contracts match a query.
type AmbiguousContractErr struct {
	Query   string
	Matches []*models.Contract
}

func (e *AmbiguousContractErr) Error() string {
	sorted := make([]*models.Contract, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ArtifactRef() < sorted[j].ArtifactRef()
	})

	var suggestions []string
	for _, contract := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", contract.ArtifactRef()))
	}

	return fmt.Sprintf("multiple contracts match %q - use full path:contract format to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}
