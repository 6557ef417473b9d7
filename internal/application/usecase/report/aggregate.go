package report

import (
	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// Totals holds the aggregate figures for a set of transactions.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Aggregate computes income, expense, and balance totals over a snapshot.
// Invalid amounts contribute zero, so malformed input can never poison a
// total. The whole aggregate is recomputed on every call; there is no
// incremental state.
func Aggregate(transactions []*entity.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, txn := range transactions {
		switch txn.Category {
		case entity.CategoryIncome:
			income = income.Add(txn.Amount.OrZero())
		case entity.CategoryExpense:
			expenses = expenses.Add(txn.Amount.OrZero())
		}
	}

	return Totals{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// PercentOf returns part as a percentage of total, rounded to two decimal
// places. A zero total yields 0 rather than a division error.
func PercentOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
	return pct
}

// ChangePercent returns the period-over-period change from previous to
// current, rounded to two decimal places. A zero previous value yields 0.
func ChangePercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	pct, _ := current.Sub(previous).Mul(decimal.NewFromInt(100)).Div(previous).Round(2).Float64()
	return pct
}
