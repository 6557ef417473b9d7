// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// MinRemarksLength is the minimum length of non-empty remarks.
const MinRemarksLength = 3

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        string
	Category    entity.Category
	Subcategory string
	Sender      string
	Receiver    string
	Remarks     string
	Amount      entity.Amount
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	savedSenderRepo adapter.SavedSenderRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	savedSenderRepo adapter.SavedSenderRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		savedSenderRepo: savedSenderRepo,
	}
}

// Execute validates and persists a new ledger entry. The sender name is
// remembered for entry-form suggestions; a failure there does not fail the
// creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	input.Sender = strings.TrimSpace(input.Sender)
	input.Receiver = strings.TrimSpace(input.Receiver)
	input.Remarks = strings.TrimSpace(input.Remarks)

	if err := uc.validate(input); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Date,
		input.Category,
		input.Subcategory,
		input.Sender,
		input.Receiver,
		input.Remarks,
		input.Amount.Value,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Remember the sender for future entries; best-effort.
	if err := uc.savedSenderRepo.Save(ctx, input.Sender); err != nil {
		slog.Warn("Failed to save sender suggestion", "sender", input.Sender, "error", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

func (uc *CreateTransactionUseCase) validate(input CreateTransactionInput) error {
	if !entity.IsValidDate(input.Date) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a valid YYYY-MM-DD value",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if !input.Category.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			"category must be 'Income' or 'Expense'",
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	required := []struct {
		name  string
		value string
	}{
		{"subcategory", input.Subcategory},
		{"sender", input.Sender},
		{"receiver", input.Receiver},
	}
	for _, field := range required {
		if field.value == "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionField,
				fmt.Sprintf("%s is required", field.name),
				domainerror.ErrMissingTransactionField,
			)
		}
	}

	if input.Remarks != "" && len(input.Remarks) < MinRemarksLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeRemarksTooShort,
			fmt.Sprintf("remarks should be at least %d characters", MinRemarksLength),
			domainerror.ErrRemarksTooShort,
		)
	}

	if !input.Amount.Valid || !input.Amount.Value.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a number greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return nil
}
