package table

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

func mk(date string, category entity.Category, subcategory, sender, receiver, remarks, amount string) *entity.Transaction {
	return &entity.Transaction{
		Date:        date,
		Category:    category,
		Subcategory: subcategory,
		Sender:      sender,
		Receiver:    receiver,
		Remarks:     remarks,
		Amount:      entity.AmountFromString(amount),
	}
}

func TestTextFilter(t *testing.T) {
	snapshot := []*entity.Transaction{
		mk("2024-04-01", entity.CategoryIncome, "Donations", "Ahmed Trust", "Main", "annual grant", "100"),
		mk("2024-04-02", entity.CategoryExpense, "Utilities", "WAPDA", "Main", "electricity bill", "50"),
		mk("2024-04-03", entity.CategoryExpense, "Salaries", "Madrasah", "Branch", "april payroll", "200"),
	}

	t.Run("contains is the default and case-insensitive", func(t *testing.T) {
		got := ColumnFilters{Sender: TextFilter{Value: "ahmed"}}.Apply(snapshot)
		if len(got) != 1 || got[0].Sender != "Ahmed Trust" {
			t.Fatalf("expected the Ahmed Trust record, got %d matches", len(got))
		}
	})

	t.Run("equals matches the whole value", func(t *testing.T) {
		got := ColumnFilters{Sender: TextFilter{Operator: TextEquals, Value: "wapda"}}.Apply(snapshot)
		if len(got) != 1 || got[0].Sender != "WAPDA" {
			t.Fatalf("expected the WAPDA record, got %d matches", len(got))
		}
		got = ColumnFilters{Sender: TextFilter{Operator: TextEquals, Value: "wap"}}.Apply(snapshot)
		if len(got) != 0 {
			t.Errorf("expected no matches for a partial equals, got %d", len(got))
		}
	})

	t.Run("starts and ends operators", func(t *testing.T) {
		got := ColumnFilters{Remarks: TextFilter{Operator: TextStartsWith, Value: "april"}}.Apply(snapshot)
		if len(got) != 1 || got[0].Remarks != "april payroll" {
			t.Fatalf("expected the payroll record, got %d matches", len(got))
		}
		got = ColumnFilters{Remarks: TextFilter{Operator: TextEndsWith, Value: "bill"}}.Apply(snapshot)
		if len(got) != 1 || got[0].Remarks != "electricity bill" {
			t.Fatalf("expected the bill record, got %d matches", len(got))
		}
	})

	t.Run("empty value matches everything", func(t *testing.T) {
		got := ColumnFilters{Sender: TextFilter{Operator: TextEquals}}.Apply(snapshot)
		if len(got) != len(snapshot) {
			t.Errorf("expected all records, got %d", len(got))
		}
	})
}

func TestColumnFilters_Apply(t *testing.T) {
	snapshot := []*entity.Transaction{
		mk("2024-04-01", entity.CategoryIncome, "Donations", "S1", "R1", "", "100"),
		mk("2024-04-10", entity.CategoryExpense, "Utilities", "S2", "R1", "", "50"),
		mk("2024-05-01", entity.CategoryExpense, "Salaries", "S3", "R2", "", ""),
	}

	t.Run("category set filter", func(t *testing.T) {
		got := ColumnFilters{Categories: []entity.Category{entity.CategoryExpense}}.Apply(snapshot)
		if len(got) != 2 {
			t.Fatalf("expected 2 expense records, got %d", len(got))
		}
	})

	t.Run("date sub-range is inclusive", func(t *testing.T) {
		got := ColumnFilters{DateFrom: "2024-04-01", DateTo: "2024-04-10"}.Apply(snapshot)
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("amount bounds exclude invalid amounts", func(t *testing.T) {
		min := decimal.NewFromInt(0)
		got := ColumnFilters{AmountMin: &min}.Apply(snapshot)
		for _, txn := range got {
			if !txn.Amount.Valid {
				t.Error("expected records with invalid amounts to be excluded")
			}
		}
		if len(got) != 2 {
			t.Errorf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("invalid amounts pass when no bounds are set", func(t *testing.T) {
		got := ColumnFilters{}.Apply(snapshot)
		if len(got) != 3 {
			t.Errorf("expected all 3 records, got %d", len(got))
		}
	})

	t.Run("amount max bound", func(t *testing.T) {
		max := decimal.NewFromInt(60)
		got := ColumnFilters{AmountMax: &max}.Apply(snapshot)
		if len(got) != 1 || !got[0].Amount.Value.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected only the 50 record, got %d matches", len(got))
		}
	})

	t.Run("filters compose with AND semantics", func(t *testing.T) {
		got := ColumnFilters{
			Categories: []entity.Category{entity.CategoryExpense},
			Receiver:   TextFilter{Operator: TextEquals, Value: "R1"},
		}.Apply(snapshot)
		if len(got) != 1 || got[0].Sender != "S2" {
			t.Fatalf("expected only the S2 record, got %d matches", len(got))
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		got := ColumnFilters{Receiver: TextFilter{Value: "R"}}.Apply(snapshot)
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}
		if got[0].Date != "2024-04-01" || got[2].Date != "2024-05-01" {
			t.Error("order changed")
		}
	})
}
