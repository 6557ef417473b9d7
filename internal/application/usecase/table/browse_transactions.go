package table

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// BrowseTransactionsInput represents the input for the table view.
type BrowseTransactionsInput struct {
	Filters   ColumnFilters
	SortKey   SortKey
	Direction SortDirection
	Page      int
	PageSize  int
}

// BrowseTransactionsOutput represents one page of the table view.
type BrowseTransactionsOutput struct {
	Result PageResult
}

// BrowseTransactionsUseCase drives the table view: column filters over the
// full snapshot, then sort and paginate.
type BrowseTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBrowseTransactionsUseCase creates a new BrowseTransactionsUseCase instance.
func NewBrowseTransactionsUseCase(transactionRepo adapter.TransactionRepository) *BrowseTransactionsUseCase {
	return &BrowseTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the table browse.
func (uc *BrowseTransactionsUseCase) Execute(ctx context.Context, input BrowseTransactionsInput) (*BrowseTransactionsOutput, error) {
	key := input.SortKey
	if key == "" {
		key = SortByDate
	}
	if !key.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortKey,
			fmt.Sprintf("unknown sort key %q", input.SortKey),
			domainerror.ErrInvalidSortKey,
		)
	}
	direction := input.Direction
	if direction != SortAsc {
		direction = SortDesc
	}

	all, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := input.Filters.Apply(all)
	result := SortAndPage(filtered, key, direction, input.Page, input.PageSize)

	return &BrowseTransactionsOutput{Result: result}, nil
}
