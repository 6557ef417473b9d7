package report

import (
	"testing"
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

func ref(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 30, 0, 0, time.Local)
}

func TestResolvePeriod_ThisMonth(t *testing.T) {
	t.Run("covers the full calendar month", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisMonth, ref(2024, time.June, 14))
		if p.FromDate != "2024-06-01" || p.ToDate != "2024-06-30" {
			t.Errorf("expected 2024-06-01..2024-06-30, got %s..%s", p.FromDate, p.ToDate)
		}
	})

	t.Run("handles February in a leap year", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisMonth, ref(2024, time.February, 10))
		if p.ToDate != "2024-02-29" {
			t.Errorf("expected 2024-02-29, got %s", p.ToDate)
		}
	})
}

func TestResolvePeriod_ThisQuarter(t *testing.T) {
	cases := []struct {
		name     string
		ref      time.Time
		from, to string
	}{
		{"Q1", ref(2024, time.February, 1), "2024-01-01", "2024-03-31"},
		{"Q2", ref(2024, time.May, 20), "2024-04-01", "2024-06-30"},
		{"Q3", ref(2024, time.September, 30), "2024-07-01", "2024-09-30"},
		{"Q4", ref(2024, time.December, 31), "2024-10-01", "2024-12-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ResolvePeriod(entity.PeriodThisQuarter, tc.ref)
			if p.FromDate != tc.from || p.ToDate != tc.to {
				t.Errorf("expected %s..%s, got %s..%s", tc.from, tc.to, p.FromDate, p.ToDate)
			}
		})
	}
}

func TestResolvePeriod_ThisFiscalYear(t *testing.T) {
	t.Run("reference after April 1 starts this year", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisFiscalYear, ref(2024, time.July, 10))
		if p.FromDate != "2024-04-01" || p.ToDate != "2025-03-31" {
			t.Errorf("expected 2024-04-01..2025-03-31, got %s..%s", p.FromDate, p.ToDate)
		}
	})

	t.Run("reference before April 1 starts the previous year", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisFiscalYear, ref(2024, time.February, 15))
		if p.FromDate != "2023-04-01" || p.ToDate != "2024-03-31" {
			t.Errorf("expected 2023-04-01..2024-03-31, got %s..%s", p.FromDate, p.ToDate)
		}
	})

	t.Run("April 1 itself starts this year", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisFiscalYear, ref(2024, time.April, 1))
		if p.FromDate != "2024-04-01" {
			t.Errorf("expected 2024-04-01, got %s", p.FromDate)
		}
	})

	t.Run("March 31 belongs to the previous fiscal year", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodThisFiscalYear, ref(2024, time.March, 31))
		if p.FromDate != "2023-04-01" || p.ToDate != "2024-03-31" {
			t.Errorf("expected 2023-04-01..2024-03-31, got %s..%s", p.FromDate, p.ToDate)
		}
	})
}

func TestResolvePeriod_Unbounded(t *testing.T) {
	t.Run("allTime has no bounds", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodAllTime, ref(2024, time.June, 1))
		if p.Bounded() {
			t.Error("expected allTime to be unbounded")
		}
	})

	t.Run("custom bounds come from the caller", func(t *testing.T) {
		p := ResolvePeriod(entity.PeriodCustom, ref(2024, time.June, 1))
		if p.FromDate != "" || p.ToDate != "" {
			t.Errorf("expected empty bounds, got %s..%s", p.FromDate, p.ToDate)
		}
	})
}
