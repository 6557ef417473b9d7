package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// fakeTransactionRepo serves a fixed snapshot.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	r.transactions = append(r.transactions, txn)
	return r.err
}

func (r *fakeTransactionRepo) List(ctx context.Context, query adapter.TransactionQuery) ([]*entity.Transaction, error) {
	return r.transactions, r.err
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, r.err
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id int64) error {
	return r.err
}

func TestGetSummaryUseCase(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		mk("2024-03-01", entity.CategoryIncome, "Donations", "R1", "500"),
		mk("2024-03-15", entity.CategoryExpense, "Utilities", "R1", "200"),
		mk("2023-03-10", entity.CategoryIncome, "Donations", "R1", "1000"),
	}}
	uc := NewGetSummaryUseCase(repo)

	t.Run("aggregates the resolved period", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSummaryInput{Params: Params{
			Mode:      entity.PeriodThisMonth,
			Reference: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Period.FromDate != "2024-03-01" || output.Period.ToDate != "2024-03-31" {
			t.Errorf("unexpected period: %s..%s", output.Period.FromDate, output.Period.ToDate)
		}
		if !output.Totals.Income.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected income 500, got %s", output.Totals.Income)
		}
		if !output.Totals.Expenses.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected expenses 200, got %s", output.Totals.Expenses)
		}
		if !output.Totals.Balance.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected balance 300, got %s", output.Totals.Balance)
		}
		if output.TransactionCount != 2 {
			t.Errorf("expected 2 transactions, got %d", output.TransactionCount)
		}
	})

	t.Run("comparison covers the same window one year earlier", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSummaryInput{Params: Params{
			Mode:      entity.PeriodThisMonth,
			Reference: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Comparison == nil {
			t.Fatal("expected a comparison for a bounded period")
		}
		if output.Comparison.Period.FromDate != "2023-03-01" {
			t.Errorf("expected previous window start 2023-03-01, got %s", output.Comparison.Period.FromDate)
		}
		if !output.Comparison.Totals.Income.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected previous income 1000, got %s", output.Comparison.Totals.Income)
		}
		if output.Comparison.IncomeChange != -50 {
			t.Errorf("expected income change -50, got %v", output.Comparison.IncomeChange)
		}
	})

	t.Run("no comparison for allTime", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSummaryInput{Params: Params{
			Mode: entity.PeriodAllTime,
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Comparison != nil {
			t.Error("expected no comparison for an unbounded period")
		}
	})

	t.Run("rejects an unknown mode", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), GetSummaryInput{Params: Params{
			Mode: entity.PeriodMode("lastDecade"),
		}}); err == nil {
			t.Error("expected an error for an unknown mode")
		}
	})

	t.Run("rejects malformed custom bounds", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), GetSummaryInput{Params: Params{
			Mode:       entity.PeriodCustom,
			CustomFrom: "03/01/2024",
		}}); err == nil {
			t.Error("expected an error for a malformed custom bound")
		}
	})
}
