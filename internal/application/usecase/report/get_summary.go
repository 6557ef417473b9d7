package report

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the period summary report.
type GetSummaryInput struct {
	Params
}

// ComparisonOutput holds the previous-period window and its totals,
// alongside change percentages against the current period.
type ComparisonOutput struct {
	Period         entity.Period
	Totals         Totals
	IncomeChange   float64
	ExpensesChange float64
	BalanceChange  float64
}

// GetSummaryOutput represents the output of the period summary report.
type GetSummaryOutput struct {
	Period entity.Period
	Totals Totals
	// Comparison is nil for unbounded periods, where no previous window exists.
	Comparison *ComparisonOutput
	// TransactionCount is the number of records in the filtered set.
	TransactionCount int
}

// GetSummaryUseCase computes period totals with year-over-year comparison.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute resolves the period, filters the snapshot, and aggregates both
// the current window and the same window one year earlier.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	filter, err := resolveFilter(input.Params)
	if err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := FilterTransactions(all, filter)
	totals := Aggregate(filtered)

	output := &GetSummaryOutput{
		Period:           filter.Period,
		Totals:           totals,
		TransactionCount: len(filtered),
	}

	if previous := PreviousPeriod(filter.Period); previous != nil {
		prevTotals := Aggregate(TransactionsInRange(all, *previous))
		output.Comparison = &ComparisonOutput{
			Period:         *previous,
			Totals:         prevTotals,
			IncomeChange:   ChangePercent(totals.Income, prevTotals.Income),
			ExpensesChange: ChangePercent(totals.Expenses, prevTotals.Expenses),
			BalanceChange:  ChangePercent(totals.Balance, prevTotals.Balance),
		}
	}

	return output, nil
}
