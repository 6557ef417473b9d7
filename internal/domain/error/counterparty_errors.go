// Package error defines domain-specific errors for the accounts backend.
package error

import "errors"

// Counterparty domain errors.
var (
	// ErrInvalidCounterpartyKind is returned when the kind filter is not sender or receiver.
	ErrInvalidCounterpartyKind = errors.New("kind must be 'sender' or 'receiver'")

	// ErrEmptySenderName is returned when a saved sender name is blank.
	ErrEmptySenderName = errors.New("sender is required and must be a non-empty string")
)

// CounterpartyErrorCode defines error codes for counterparty errors.
// Format: CPT-XXYYYY where XX is category and YYYY is specific error.
type CounterpartyErrorCode string

const (
	ErrCodeInvalidCounterpartyKind CounterpartyErrorCode = "CPT-010001"
	ErrCodeEmptySenderName         CounterpartyErrorCode = "CPT-010002"
)

// CounterpartyError represents a counterparty error with code and message.
type CounterpartyError struct {
	Code    CounterpartyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CounterpartyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CounterpartyError) Unwrap() error {
	return e.Err
}

// NewCounterpartyError creates a new CounterpartyError with the given code and message.
func NewCounterpartyError(code CounterpartyErrorCode, message string, err error) *CounterpartyError {
	return &CounterpartyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
