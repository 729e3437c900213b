package errors

import "fmt"

// ErrorCode classifies a fatal extraction error. The taxonomy is narrow on
// purpose: malformed attributes are skipped, not reported, so only input
// selection, exchange parsing, and output writing can fail a run.
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT" // bad path or mode mismatch
	ErrNotFound     ErrorCode = "NOT_FOUND"     // missing input file
	ErrParse        ErrorCode = "PARSE"         // malformed exchange input
	ErrInternal     ErrorCode = "INTERNAL"      // I/O and everything else
)

// ScanError represents a structured error with a code and message.
type ScanError struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped cause, may be nil
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewInvalidInput creates an error for an unusable input path or a
// mode/input mismatch.
func NewInvalidInput(msg string) *ScanError {
	return &ScanError{
		Code:    ErrInvalidInput,
		Message: msg,
	}
}

// NewNotFound creates an error for a missing input file.
func NewNotFound(path string) *ScanError {
	return &ScanError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("input not found: %s", path),
	}
}

// NewParse creates an error for malformed exchange-format input.
func NewParse(msg string, err error) *ScanError {
	return &ScanError{
		Code:    ErrParse,
		Message: msg,
		Err:     err,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *ScanError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ScanError{
		Code:    ErrInternal,
		Message: msg,
		Err:     err,
	}
}

// Is checks if an error is a ScanError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*ScanError); ok {
		return sErr.Code == code
	}
	return false
}
