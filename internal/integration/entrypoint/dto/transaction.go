package dto

import (
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for creating a
// transaction. Amount tolerates both JSON numbers and quoted decimals;
// validation happens in the use case.
type CreateTransactionRequest struct {
	Date        string        `json:"date" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Subcategory string        `json:"subcategory" binding:"required"`
	Sender      string        `json:"sender" binding:"required"`
	Receiver    string        `json:"receiver" binding:"required"`
	Remarks     string        `json:"remarks"`
	Amount      entity.Amount `json:"amount"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	Category    string        `json:"category"`
	Subcategory string        `json:"subcategory"`
	Sender      string        `json:"sender"`
	Receiver    string        `json:"receiver"`
	Remarks     string        `json:"remarks"`
	Amount      entity.Amount `json:"amount"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction to its response form.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Date:        txn.Date,
		Category:    string(txn.Category),
		Subcategory: txn.Subcategory,
		Sender:      txn.Sender,
		Receiver:    txn.Receiver,
		Remarks:     txn.Remarks,
		Amount:      txn.Amount,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a transaction slice.
func ToTransactionListResponse(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// BrowseTransactionsResponse represents one page of the table view.
type BrowseTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         int                   `json:"page"`
	TotalPages   int                   `json:"total_pages"`
	TotalCount   int                   `json:"total_count"`
}
