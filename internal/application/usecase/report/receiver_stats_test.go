package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

func TestReceiverStats(t *testing.T) {
	t.Run("groups by receiver with per-group totals", func(t *testing.T) {
		positions := ReceiverStats([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "Main Campus", "500"),
			mk("2024-04-02", entity.CategoryExpense, "Utilities", "Main Campus", "200"),
			mk("2024-04-03", entity.CategoryIncome, "Grants", "Branch A", "100"),
		})

		if len(positions) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(positions))
		}
		main := positions[0]
		if main.Receiver != "Main Campus" {
			t.Fatalf("expected Main Campus first, got %s", main.Receiver)
		}
		if !main.Balance.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected balance 300, got %s", main.Balance)
		}
		if main.Overspent {
			t.Error("expected Main Campus not overspent")
		}
	})

	t.Run("empty receiver groups as Unassigned", func(t *testing.T) {
		positions := ReceiverStats([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryExpense, "Utilities", "", "10"),
		})

		if len(positions) != 1 || positions[0].Receiver != UnassignedReceiver {
			t.Fatalf("expected one Unassigned group, got %+v", positions)
		}
	})

	t.Run("negative balance marks the group overspent", func(t *testing.T) {
		positions := ReceiverStats([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "Branch B", "50"),
			mk("2024-04-02", entity.CategoryExpense, "Salaries", "Branch B", "80"),
		})

		if !positions[0].Overspent {
			t.Error("expected Branch B to be overspent")
		}
		if !positions[0].Balance.Equal(decimal.RequireFromString("-30")) {
			t.Errorf("expected balance -30, got %s", positions[0].Balance)
		}
	})

	t.Run("zero balance is not overspent", func(t *testing.T) {
		positions := ReceiverStats([]*entity.Transaction{
			mk("2024-04-01", entity.CategoryIncome, "Donations", "Branch C", "25"),
			mk("2024-04-02", entity.CategoryExpense, "Utilities", "Branch C", "25"),
		})

		if positions[0].Overspent {
			t.Error("expected zero balance not to count as overspent")
		}
	})
}
