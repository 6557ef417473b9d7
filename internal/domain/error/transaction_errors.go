// Package error defines domain-specific errors for the accounts backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionDate is returned when the transaction date is not a valid YYYY-MM-DD value.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionCategory is returned when the category is neither Income nor Expense.
	ErrInvalidTransactionCategory = errors.New("category must be 'Income' or 'Expense'")

	// ErrInvalidTransactionAmount is returned when the amount is missing, non-numeric, or not positive.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrMissingTransactionField is returned when a required field is empty.
	ErrMissingTransactionField = errors.New("required field is missing")

	// ErrRemarksTooShort is returned when non-empty remarks are shorter than the minimum length.
	ErrRemarksTooShort = errors.New("remarks should be at least 3 characters")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionDate     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionCategory TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionField    TransactionErrorCode = "TXN-010004"
	ErrCodeRemarksTooShort            TransactionErrorCode = "TXN-010005"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
