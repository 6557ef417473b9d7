package report

import (
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// Filter is the parameter set for the report pipeline: a resolved period
// plus an optional exact-match receiver. The table view uses its own,
// separate column-filter pipeline.
type Filter struct {
	Period   entity.Period
	Receiver string
}

// FilterTransactions returns the subset of transactions matching the
// filter. The input order is preserved and the input slice is never
// mutated.
//
// Date comparison is lexicographic on the zero-padded YYYY-MM-DD strings,
// which orders identically to calendar comparison. The period filter is
// skipped entirely for allTime.
func FilterTransactions(all []*entity.Transaction, filter Filter) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(all))

	applyPeriod := filter.Period.Mode != entity.PeriodAllTime
	fromDate := filter.Period.FromDate
	toDate := filter.Period.ToDate

	for _, txn := range all {
		if filter.Receiver != "" && txn.Receiver != filter.Receiver {
			continue
		}
		if applyPeriod {
			if fromDate != "" && txn.Date < fromDate {
				continue
			}
			if toDate != "" && txn.Date > toDate {
				continue
			}
		}
		matched = append(matched, txn)
	}

	return matched
}

// TransactionsInRange keeps records whose date lies within the period's
// bounds, ignoring any receiver filter. Used for previous-period
// comparison, which compares whole windows rather than filtered views.
func TransactionsInRange(all []*entity.Transaction, period entity.Period) []*entity.Transaction {
	return FilterTransactions(all, Filter{Period: period})
}
