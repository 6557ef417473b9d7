package report

import (
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// PreviousPeriod computes the same calendar window one year earlier, used
// for year-over-year comparison. The start shifts back by calendar-year
// identity (not -365 days) and the end is placed so the window keeps the
// exact same day-length. Returns nil for an unbounded period: there is no
// well-defined previous window for allTime or an incomplete custom range.
//
// When the start falls on Feb 29 and the target year is not a leap year,
// the shifted start clamps to Feb 28.
func PreviousPeriod(period entity.Period) *entity.Period {
	if !period.Bounded() {
		return nil
	}

	from, ok := entity.ParseDate(period.FromDate)
	if !ok {
		return nil
	}
	to, ok := entity.ParseDate(period.ToDate)
	if !ok {
		return nil
	}

	// Inclusive day-length of the current window.
	length := daysBetween(from, to) + 1
	if length < 1 {
		return nil
	}

	prevFrom := shiftYearBack(from)
	prevTo := prevFrom.AddDate(0, 0, length-1)

	return &entity.Period{
		Mode:     period.Mode,
		FromDate: entity.FormatDate(prevFrom),
		ToDate:   entity.FormatDate(prevTo),
	}
}

// shiftYearBack decrements the year while preserving month and day,
// clamping the day when the previous year's month is shorter.
func shiftYearBack(date time.Time) time.Time {
	year := date.Year() - 1
	month := date.Month()
	day := date.Day()

	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

// daysBetween counts whole calendar days from a to b. Both dates are
// re-anchored in UTC so a DST transition inside the window cannot skew
// the count.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
