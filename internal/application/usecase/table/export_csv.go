package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
)

// csvHeader is the column order of the exported file.
var csvHeader = []string{"Date", "Category", "Subcategory", "Sender", "Receiver", "Amount", "Remarks"}

// ExportCSVInput represents the input for the CSV export.
type ExportCSVInput struct {
	Filters   ColumnFilters
	SortKey   SortKey
	Direction SortDirection
}

// ExportCSVOutput represents the exported file.
type ExportCSVOutput struct {
	Content  []byte
	Filename string
	Rows     int
}

// ExportCSVUseCase serializes the current table view to CSV. Field values
// are written exactly as stored; formatting is left to the consumer.
type ExportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(transactionRepo adapter.TransactionRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute filters and sorts the snapshot, then writes all matching rows.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	key := input.SortKey
	if !key.IsValid() {
		key = SortByDate
	}
	direction := input.Direction
	if direction != SortAsc {
		direction = SortDesc
	}

	all, err := uc.transactionRepo.List(ctx, adapter.TransactionQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := input.Filters.Apply(all)
	sorted := SortAndPage(filtered, key, direction, 1, maxInt(len(filtered), 1)).Items

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, txn := range sorted {
		record := []string{
			txn.Date,
			string(txn.Category),
			txn.Subcategory,
			txn.Sender,
			txn.Receiver,
			txn.Amount.OrZero().String(),
			txn.Remarks,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &ExportCSVOutput{
		Content:  buf.Bytes(),
		Filename: exportFilename(input.Filters),
		Rows:     len(sorted),
	}, nil
}

func exportFilename(filters ColumnFilters) string {
	if filters.DateFrom != "" || filters.DateTo != "" {
		return fmt.Sprintf("madrasah_accounts_%s_to_%s.csv", filters.DateFrom, filters.DateTo)
	}
	return "madrasah_accounts_all.csv"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
