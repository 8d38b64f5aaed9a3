package usecase

import (
	"context"

	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// ListContracts returns the indexed compiled contracts.
type ListContracts struct {
	contracts ContractRepository
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(contracts ContractRepository) *ListContracts {
	return &ListContracts{contracts: contracts}
}

// ContractListResult contains the result of listing contracts
type ContractListResult struct {
	Contracts []*models.Contract
}

// Run lists contracts, optionally filtered by a search query.
func (uc *ListContracts) Run(ctx context.Context, query string) (*ContractListResult, error) {
	if query != "" {
		matches, err := uc.contracts.SearchContracts(ctx, query)
		if err != nil {
			return nil, err
		}
		return &ContractListResult{Contracts: matches}, nil
	}

	all, err := uc.contracts.AllContracts(ctx)
	if err != nil {
		return nil, err
	}
	return &ContractListResult{Contracts: all}, nil
}
