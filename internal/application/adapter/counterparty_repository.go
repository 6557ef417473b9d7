package adapter

import (
	"context"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// CounterpartyFilter narrows the counterparty listing.
type CounterpartyFilter struct {
	// Kind restricts to entities usable on one side; entities marked "both"
	// always match. Empty means no restriction.
	Kind entity.CounterpartyKind
	// Trial selects the trial dataset instead of the live one.
	Trial bool
}

// CounterpartyRepository defines the interface for reference entity persistence.
type CounterpartyRepository interface {
	// List returns non-deleted counterparties matching the filter, ordered
	// by name ascending.
	List(ctx context.Context, filter CounterpartyFilter) ([]*entity.Counterparty, error)
}

// SavedSenderRepository defines the interface for the remembered sender list.
type SavedSenderRepository interface {
	// List returns all distinct saved sender names, ordered ascending.
	List(ctx context.Context) ([]string, error)

	// Save stores a sender name; saving an existing name is a no-op.
	Save(ctx context.Context, sender string) error

	// Delete removes a sender name; deleting an unknown name is a no-op.
	Delete(ctx context.Context, sender string) error
}
