package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

func TestAggregate(t *testing.T) {
	t.Run("balance is income minus expenses", func(t *testing.T) {
		totals := Aggregate([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "", "500"),
			mk("2024-04-02", entity.CategoryIncome, "Grants", "", "250.50"),
			mk("2024-04-03", entity.CategoryExpense, "Salaries", "", "300"),
		})
		if !totals.Income.Equal(decimal.RequireFromString("750.50")) {
			t.Errorf("expected income 750.50, got %s", totals.Income)
		}
		if !totals.Expenses.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected expenses 300, got %s", totals.Expenses)
		}
		if !totals.Balance.Equal(decimal.RequireFromString("450.50")) {
			t.Errorf("expected balance 450.50, got %s", totals.Balance)
		}
	})

	t.Run("invalid amounts contribute zero", func(t *testing.T) {
		totals := Aggregate([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "", "100"),
			mk("2024-04-02", entity.CategoryIncome, "Donations", "", ""),
			mk("2024-04-03", entity.CategoryExpense, "Utilities", "", "not-a-number"),
		})
		if !totals.Income.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected income 100, got %s", totals.Income)
		}
		if !totals.Expenses.IsZero() {
			t.Errorf("expected expenses 0, got %s", totals.Expenses)
		}
	})

	t.Run("empty snapshot yields zero totals", func(t *testing.T) {
		totals := Aggregate(nil)
		if !totals.Income.IsZero() || !totals.Expenses.IsZero() || !totals.Balance.IsZero() {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})
}

func TestPercentOf(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		got := PercentOf(decimal.NewFromInt(1), decimal.NewFromInt(3))
		if got != 33.33 {
			t.Errorf("expected 33.33, got %v", got)
		}
	})

	t.Run("zero total yields zero", func(t *testing.T) {
		if got := PercentOf(decimal.NewFromInt(5), decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestChangePercent(t *testing.T) {
	t.Run("computes signed change", func(t *testing.T) {
		if got := ChangePercent(decimal.NewFromInt(150), decimal.NewFromInt(100)); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
		if got := ChangePercent(decimal.NewFromInt(75), decimal.NewFromInt(100)); got != -25 {
			t.Errorf("expected -25, got %v", got)
		}
	})

	t.Run("zero previous yields zero", func(t *testing.T) {
		if got := ChangePercent(decimal.NewFromInt(100), decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
