// Package table contains the transaction table pipeline: per-column
// filtering, sorting, pagination, and CSV export. It operates on the full
// unfiltered snapshot, independently of the report pipeline.
package table

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// TextOperator names a case-insensitive text predicate.
type TextOperator string

const (
	TextContains   TextOperator = "contains"
	TextEquals     TextOperator = "equals"
	TextStartsWith TextOperator = "starts"
	TextEndsWith   TextOperator = "ends"
)

// TextFilter is a per-column text predicate. An empty value matches
// everything.
type TextFilter struct {
	Operator TextOperator
	Value    string
}

func (f TextFilter) matches(value string) bool {
	if f.Value == "" {
		return true
	}
	haystack := strings.ToLower(value)
	needle := strings.ToLower(f.Value)
	switch f.Operator {
	case TextEquals:
		return haystack == needle
	case TextStartsWith:
		return strings.HasPrefix(haystack, needle)
	case TextEndsWith:
		return strings.HasSuffix(haystack, needle)
	default:
		return strings.Contains(haystack, needle)
	}
}

// ColumnFilters is the per-column narrowing applied in the table view.
// Zero-value fields are inactive.
type ColumnFilters struct {
	Subcategory TextFilter
	Sender      TextFilter
	Receiver    TextFilter
	Remarks     TextFilter

	// Categories is a multi-value set filter; empty means all.
	Categories []entity.Category

	// Date sub-range, inclusive YYYY-MM-DD bounds.
	DateFrom string
	DateTo   string

	// Amount sub-range. A record with an invalid amount is excluded when a
	// bound is supplied, since no meaningful comparison exists; with no
	// bounds it passes through untouched.
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

// Apply returns the subset of transactions matching every active filter,
// preserving input order.
func (f ColumnFilters) Apply(all []*entity.Transaction) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(all))
	for _, txn := range all {
		if f.matches(txn) {
			matched = append(matched, txn)
		}
	}
	return matched
}

func (f ColumnFilters) matches(txn *entity.Transaction) bool {
	if !f.Subcategory.matches(txn.Subcategory) ||
		!f.Sender.matches(txn.Sender) ||
		!f.Receiver.matches(txn.Receiver) ||
		!f.Remarks.matches(txn.Remarks) {
		return false
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if txn.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DateFrom != "" && txn.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && txn.Date > f.DateTo {
		return false
	}

	if f.AmountMin != nil || f.AmountMax != nil {
		if !txn.Amount.Valid {
			return false
		}
		if f.AmountMin != nil && txn.Amount.Value.LessThan(*f.AmountMin) {
			return false
		}
		if f.AmountMax != nil && txn.Amount.Value.GreaterThan(*f.AmountMax) {
			return false
		}
	}

	return true
}
