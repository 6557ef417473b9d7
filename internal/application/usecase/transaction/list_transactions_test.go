package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

func TestListTransactionsUseCase(t *testing.T) {
	repo := &fakeTransactionRepo{
		transactions: []*entity.Transaction{
			{ID: 1, Date: "2024-04-02", Category: entity.CategoryIncome},
			{ID: 2, Date: "2024-04-01", Category: entity.CategoryExpense},
		},
	}
	uc := NewListTransactionsUseCase(repo)

	t.Run("returns the snapshot", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("accepts valid date bounds", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTransactionsInput{
			FromDate: "2024-04-01",
			ToDate:   "2024-04-30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects malformed fromDate", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTransactionsInput{FromDate: "01-04-2024"})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionDate {
			t.Errorf("expected invalid date error, got %v", err)
		}
	})

	t.Run("rejects rolled-over toDate", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTransactionsInput{ToDate: "2024-02-31"})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionDate {
			t.Errorf("expected invalid date error, got %v", err)
		}
	})
}
