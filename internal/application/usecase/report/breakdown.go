package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// BreakdownRow is one subcategory group in a category breakdown.
type BreakdownRow struct {
	Subcategory string
	Total       decimal.Decimal
	Count       int
	// Percentage of the category's grand total, 0 when the grand total is 0.
	Percentage float64
}

// CategoryBreakdown groups transactions of the given category by
// subcategory and returns rows sorted by total descending. Subcategories
// are compared as opaque strings. The sort is stable so ties retain
// first-encountered order.
func CategoryBreakdown(transactions []*entity.Transaction, category entity.Category) []BreakdownRow {
	index := make(map[string]int)
	rows := make([]BreakdownRow, 0)

	for _, txn := range transactions {
		if txn.Category != category {
			continue
		}
		i, seen := index[txn.Subcategory]
		if !seen {
			i = len(rows)
			index[txn.Subcategory] = i
			rows = append(rows, BreakdownRow{Subcategory: txn.Subcategory})
		}
		rows[i].Total = rows[i].Total.Add(txn.Amount.OrZero())
		rows[i].Count++
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Total.GreaterThan(rows[b].Total)
	})

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
	}
	for i := range rows {
		rows[i].Percentage = PercentOf(rows[i].Total, grandTotal)
	}

	return rows
}
