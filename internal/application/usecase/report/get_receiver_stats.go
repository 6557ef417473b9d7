package report

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// GetReceiverStatsInput represents the input for the receiver positions report.
type GetReceiverStatsInput struct {
	Params
}

// GetReceiverStatsOutput represents the output of the receiver positions report.
type GetReceiverStatsOutput struct {
	Period    entity.Period
	Positions []ReceiverPosition
}

// GetReceiverStatsUseCase computes per-receiver net positions.
type GetReceiverStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetReceiverStatsUseCase creates a new GetReceiverStatsUseCase instance.
func NewGetReceiverStatsUseCase(transactionRepo adapter.TransactionRepository) *GetReceiverStatsUseCase {
	return &GetReceiverStatsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute filters the snapshot and groups totals by receiver.
func (uc *GetReceiverStatsUseCase) Execute(ctx context.Context, input GetReceiverStatsInput) (*GetReceiverStatsOutput, error) {
	filter, err := resolveFilter(input.Params)
	if err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetReceiverStatsOutput{
		Period:    filter.Period,
		Positions: ReceiverStats(FilterTransactions(all, filter)),
	}, nil
}
