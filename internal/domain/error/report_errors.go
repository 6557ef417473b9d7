// Package error defines domain-specific errors for the accounts backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriodMode is returned when the period mode is not a known preset.
	ErrInvalidPeriodMode = errors.New("period mode must be: thisMonth, thisQuarter, thisFiscalYear, allTime, or custom")

	// ErrInvalidDateFormat is returned when a date parameter is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when a custom range ends before it starts.
	ErrInvalidDateRange = errors.New("toDate must not be before fromDate")

	// ErrInvalidSortKey is returned when the sort key names no known column.
	ErrInvalidSortKey = errors.New("unknown sort key")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodMode ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateFormat ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange  ReportErrorCode = "RPT-010003"
	ErrCodeInvalidSortKey    ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
