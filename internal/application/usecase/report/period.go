// Package report contains the reporting core: period resolution, filtering,
// and aggregation over an in-memory transaction snapshot.
package report

import (
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// Fiscal year runs April 1 through March 31.
const fiscalYearStartMonth = time.April

// ResolvePeriod computes the inclusive [from, to] calendar bounds for a
// preset period mode containing the reference date. allTime resolves to an
// unbounded period; custom bounds are supplied by the caller, not computed
// here, so custom also resolves to empty bounds.
//
// All arithmetic works on calendar components in the reference date's
// location. Date strings are produced by formatting, never by converting
// through a UTC instant.
func ResolvePeriod(mode entity.PeriodMode, reference time.Time) entity.Period {
	loc := reference.Location()

	switch mode {
	case entity.PeriodThisMonth:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, -1)
		return entity.Period{
			Mode:     mode,
			FromDate: entity.FormatDate(start),
			ToDate:   entity.FormatDate(end),
		}

	case entity.PeriodThisQuarter:
		quarter := (int(reference.Month()) - 1) / 3
		start := time.Date(reference.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 3, -1)
		return entity.Period{
			Mode:     mode,
			FromDate: entity.FormatDate(start),
			ToDate:   entity.FormatDate(end),
		}

	case entity.PeriodThisFiscalYear:
		startYear := reference.Year()
		if reference.Month() < fiscalYearStartMonth {
			startYear--
		}
		start := time.Date(startYear, fiscalYearStartMonth, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(1, 0, -1) // March 31 of the following year
		return entity.Period{
			Mode:     mode,
			FromDate: entity.FormatDate(start),
			ToDate:   entity.FormatDate(end),
		}

	default:
		return entity.Period{Mode: mode}
	}
}
