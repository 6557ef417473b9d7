package report

import (
	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// UnassignedReceiver is the grouping key substituted for transactions with
// no receiver. The original record is left untouched.
const UnassignedReceiver = "Unassigned"

// ReceiverPosition is the per-receiver net position: income received minus
// expenses spent. A negative balance means the receiver has spent beyond
// the funds received, which the presentation layer surfaces distinctly via
// Overspent.
type ReceiverPosition struct {
	Receiver  string
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Balance   decimal.Decimal
	Overspent bool
}

// ReceiverStats groups transactions by receiver and computes each group's
// totals. Groups appear in first-encountered order; any display ordering
// is a presentation choice.
func ReceiverStats(transactions []*entity.Transaction) []ReceiverPosition {
	index := make(map[string]int)
	positions := make([]ReceiverPosition, 0)

	for _, txn := range transactions {
		key := txn.Receiver
		if key == "" {
			key = UnassignedReceiver
		}
		i, seen := index[key]
		if !seen {
			i = len(positions)
			index[key] = i
			positions = append(positions, ReceiverPosition{Receiver: key})
		}
		switch txn.Category {
		case entity.CategoryIncome:
			positions[i].Income = positions[i].Income.Add(txn.Amount.OrZero())
		case entity.CategoryExpense:
			positions[i].Expenses = positions[i].Expenses.Add(txn.Amount.OrZero())
		}
	}

	for i := range positions {
		positions[i].Balance = positions[i].Income.Sub(positions[i].Expenses)
		positions[i].Overspent = positions[i].Balance.IsNegative()
	}

	return positions
}
