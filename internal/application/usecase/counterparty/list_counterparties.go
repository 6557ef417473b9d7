// Package counterparty contains reference entity use cases.
package counterparty

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// ListCounterpartiesInput represents the input for listing reference entities.
type ListCounterpartiesInput struct {
	// Kind optionally restricts to one side; empty lists all.
	Kind string
	// Trial selects the trial dataset.
	Trial bool
}

// ListCounterpartiesOutput represents the output of listing reference entities.
type ListCounterpartiesOutput struct {
	Counterparties []*entity.Counterparty
}

// ListCounterpartiesUseCase handles counterparty listing.
type ListCounterpartiesUseCase struct {
	counterpartyRepo adapter.CounterpartyRepository
}

// NewListCounterpartiesUseCase creates a new ListCounterpartiesUseCase instance.
func NewListCounterpartiesUseCase(counterpartyRepo adapter.CounterpartyRepository) *ListCounterpartiesUseCase {
	return &ListCounterpartiesUseCase{
		counterpartyRepo: counterpartyRepo,
	}
}

// Execute lists non-deleted counterparties for the requested side,
// alphabetically. Entities marked "both" always match a side filter.
func (uc *ListCounterpartiesUseCase) Execute(ctx context.Context, input ListCounterpartiesInput) (*ListCounterpartiesOutput, error) {
	var kind entity.CounterpartyKind
	switch input.Kind {
	case "":
		// no restriction
	case string(entity.CounterpartySender):
		kind = entity.CounterpartySender
	case string(entity.CounterpartyReceiver):
		kind = entity.CounterpartyReceiver
	default:
		return nil, domainerror.NewCounterpartyError(
			domainerror.ErrCodeInvalidCounterpartyKind,
			fmt.Sprintf("unknown kind %q", input.Kind),
			domainerror.ErrInvalidCounterpartyKind,
		)
	}

	counterparties, err := uc.counterpartyRepo.List(ctx, adapter.CounterpartyFilter{
		Kind:  kind,
		Trial: input.Trial,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}

	return &ListCounterpartiesOutput{Counterparties: counterparties}, nil
}
