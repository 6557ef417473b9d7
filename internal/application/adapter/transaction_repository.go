// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// TransactionQuery narrows the initial snapshot fetch. Both bounds are
// optional YYYY-MM-DD strings; the reporting core does all finer filtering
// in memory.
type TransactionQuery struct {
	FromDate string
	ToDate   string
}

// TransactionRepository defines the interface for transaction persistence.
type TransactionRepository interface {
	// Create persists a new transaction and assigns its ID and CreatedAt.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// List returns the transaction snapshot matching the query, ordered by
	// date descending then created_at descending.
	List(ctx context.Context, query TransactionQuery) ([]*entity.Transaction, error)

	// FindByID retrieves a single transaction.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id int64) error
}
