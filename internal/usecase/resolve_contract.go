package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// ResolveContract is the use case for resolving a contract reference to
// exactly one compiled contract.
type ResolveContract struct {
	config    *config.RuntimeConfig
	contracts ContractRepository
	selector  ContractSelector
	sink      ProgressSink
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(
	cfg *config.RuntimeConfig,
	contracts ContractRepository,
	selector ContractSelector,
	sink ProgressSink,
) *ResolveContract {
	return &ResolveContract{
		config:    cfg,
		contracts: contracts,
		selector:  selector,
		sink:      sink,
	}
}

// Run resolves a contract reference. "path:Name" references resolve
// exactly; bare names fall back to search, with interactive selection
// when several contracts match.
func (uc *ResolveContract) Run(ctx context.Context, contractRef string) (*models.Contract, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "resolving",
		Message: fmt.Sprintf("Resolving contract: %s", contractRef),
		Spinner: true,
	})

	if strings.Contains(contractRef, ":") {
		contract, err := uc.contracts.GetContractByArtifact(ctx, contractRef)
		if err != nil {
			return nil, err
		}
		if contract != nil {
			return contract, nil
		}
		return nil, fmt.Errorf("%q: %w", contractRef, domain.ErrContractNotFound)
	}

	matches, err := uc.contracts.SearchContracts(ctx, contractRef)
	if err != nil {
		return nil, err
	}
	switch {
	case len(matches) == 0:
		return nil, fmt.Errorf("%q: %w", contractRef, domain.ErrContractNotFound)
	case len(matches) == 1:
		return matches[0], nil
	}

	if uc.selector != nil && !uc.config.NonInteractive {
		selected, err := uc.selector.SelectContract(ctx, matches,
			fmt.Sprintf("Multiple contracts found for '%s'. Select one:", contractRef))
		if err != nil {
			return nil, fmt.Errorf("contract selection failed: %w", err)
		}
		return selected, nil
	}

	return nil, &domain.AmbiguousContractErr{Query: contractRef, Matches: matches}
}
