package table

import (
	"sort"
	"strings"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// SortKey names a sortable table column.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByCategory    SortKey = "category"
	SortBySubcategory SortKey = "subcategory"
	SortBySender      SortKey = "sender"
	SortByReceiver    SortKey = "receiver"
	SortByAmount      SortKey = "amount"
	SortByRemarks     SortKey = "remarks"
)

// IsValid reports whether the key names a known column.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDate, SortByCategory, SortBySubcategory, SortBySender,
		SortByReceiver, SortByAmount, SortByRemarks:
		return true
	}
	return false
}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultDirection is applied when sorting a newly selected column.
const DefaultDirection = SortDesc

// DefaultPageSize is the table page size when none is requested.
const DefaultPageSize = 20

// ToggleSort returns the sort state after selecting a column: selecting
// the already-active column flips the direction, selecting a new column
// resets to the default direction. Callers reset pagination to page 1 on
// any change.
func ToggleSort(activeKey SortKey, activeDir SortDirection, selected SortKey) (SortKey, SortDirection) {
	if selected == activeKey {
		if activeDir == SortDesc {
			return selected, SortAsc
		}
		return selected, SortDesc
	}
	return selected, DefaultDirection
}

// PageResult is one page of a sorted transaction list.
type PageResult struct {
	Items      []*entity.Transaction
	Page       int
	TotalPages int
	TotalCount int
}

// SortAndPage sorts a copy of the list by the given key and direction and
// returns the requested 1-indexed page. Dates compare by parsed calendar
// value, falling back to the raw string for unparseable dates; amounts
// compare numerically with invalid amounts as zero; all other columns
// compare case-insensitively. The sort is stable. TotalPages is at least
// 1, even for an empty list.
func SortAndPage(transactions []*entity.Transaction, key SortKey, direction SortDirection, page, pageSize int) PageResult {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)

	less := lessFunc(key)
	sort.SliceStable(sorted, func(a, b int) bool {
		if direction == SortAsc {
			return less(sorted[a], sorted[b])
		}
		return less(sorted[b], sorted[a])
	})

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(sorted) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return PageResult{
		Items:      sorted[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(sorted),
	}
}

func lessFunc(key SortKey) func(a, b *entity.Transaction) bool {
	switch key {
	case SortByDate:
		return func(a, b *entity.Transaction) bool {
			da, aok := entity.ParseDate(a.Date)
			db, bok := entity.ParseDate(b.Date)
			if aok && bok {
				return da.Before(db)
			}
			// Unparseable dates fall back to an opaque string comparison.
			return a.Date < b.Date
		}
	case SortByAmount:
		return func(a, b *entity.Transaction) bool {
			return a.Amount.OrZero().LessThan(b.Amount.OrZero())
		}
	case SortByCategory:
		return stringLess(func(t *entity.Transaction) string { return string(t.Category) })
	case SortBySubcategory:
		return stringLess(func(t *entity.Transaction) string { return t.Subcategory })
	case SortBySender:
		return stringLess(func(t *entity.Transaction) string { return t.Sender })
	case SortByReceiver:
		return stringLess(func(t *entity.Transaction) string { return t.Receiver })
	default:
		return stringLess(func(t *entity.Transaction) string { return t.Remarks })
	}
}

func stringLess(field func(*entity.Transaction) string) func(a, b *entity.Transaction) bool {
	return func(a, b *entity.Transaction) bool {
		return strings.ToLower(field(a)) < strings.ToLower(field(b))
	}
}
