package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

func TestCategoryBreakdown(t *testing.T) {
	t.Run("groups by subcategory and sorts by total descending", func(t *testing.T) {
		rows := CategoryBreakdown([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryExpense, "Utilities", "", "100"),
			mk("2024-04-02", entity.CategoryExpense, "Salaries", "", "400"),
			mk("2024-04-03", entity.CategoryExpense, "Utilities", "", "50"),
			mk("2024-04-04", entity.CategoryIncome, "Donations", "", "999"),
		}, entity.CategoryExpense)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Subcategory != "Salaries" || rows[1].Subcategory != "Utilities" {
			t.Errorf("unexpected order: %s, %s", rows[0].Subcategory, rows[1].Subcategory)
		}
		if !rows[1].Total.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected Utilities total 150, got %s", rows[1].Total)
		}
		if rows[1].Count != 2 {
			t.Errorf("expected Utilities count 2, got %d", rows[1].Count)
		}
	})

	t.Run("percentages are relative to the category grand total", func(t *testing.T) {
		rows := CategoryBreakdown([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "", "75"),
			mk("2024-04-02", entity.CategoryIncome, "Grants", "", "25"),
		}, entity.CategoryIncome)

		if rows[0].Percentage != 75 || rows[1].Percentage != 25 {
			t.Errorf("expected 75/25, got %v/%v", rows[0].Percentage, rows[1].Percentage)
		}
	})

	t.Run("ties retain first-encountered order", func(t *testing.T) {
		rows := CategoryBreakdown([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryExpense, "Books & Materials", "", "10"),
			mk("2024-04-02", entity.CategoryExpense, "Infrastructure", "", "10"),
		}, entity.CategoryExpense)

		if rows[0].Subcategory != "Books & Materials" {
			t.Errorf("expected Books & Materials first, got %s", rows[0].Subcategory)
		}
	})

	t.Run("zero grand total yields zero percentages", func(t *testing.T) {
		rows := CategoryBreakdown([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryExpense, "Salaries", "", ""),
		}, entity.CategoryExpense)

		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Percentage != 0 {
			t.Errorf("expected 0, got %v", rows[0].Percentage)
		}
	})

	t.Run("no matching category yields no rows", func(t *testing.T) {
		rows := CategoryBreakdown([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "", "10"),
		}, entity.CategoryExpense)

		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}
