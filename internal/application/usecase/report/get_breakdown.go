package report

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// GetBreakdownInput represents the input for the category breakdown report.
type GetBreakdownInput struct {
	Params
}

// GetBreakdownOutput represents the output of the category breakdown report.
type GetBreakdownOutput struct {
	Period  entity.Period
	Income  []BreakdownRow
	Expense []BreakdownRow
}

// GetBreakdownUseCase computes subcategory breakdowns for both categories.
type GetBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute filters the snapshot and groups each category by subcategory.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
	filter, err := resolveFilter(input.Params)
	if err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := FilterTransactions(all, filter)

	return &GetBreakdownOutput{
		Period:  filter.Period,
		Income:  CategoryBreakdown(filtered, entity.CategoryIncome),
		Expense: CategoryBreakdown(filtered, entity.CategoryExpense),
	}, nil
}
