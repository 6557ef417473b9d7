package transaction

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// Both date bounds are optional; the storage-side prefilter is an
// optimization, the reporting pipelines re-filter in memory regardless.
type ListTransactionsInput struct {
	FromDate string
	ToDate   string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles the snapshot fetch.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the snapshot ordered by date descending, newest first
// within a day.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.FromDate != "" && !entity.IsValidDate(input.FromDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"fromDate must be a valid YYYY-MM-DD value",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if input.ToDate != "" && !entity.IsValidDate(input.ToDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"toDate must be a valid YYYY-MM-DD value",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
