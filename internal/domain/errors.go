package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable, machine-readable domain error code. These codes are
// our own taxonomy, distinct from the gateway's numeric proc return codes.
type ErrorCode string

const (
	// 3-D Secure
	ErrorCodeInvalid3DSignature ErrorCode = "3D01"
	ErrorCodeInvalid3DStatus    ErrorCode = "3D02"
	ErrorCodeMissing3DData      ErrorCode = "3D03"

	// Refunds
	ErrorCodeRefundNotAllowed     ErrorCode = "RF01"
	ErrorCodeRefundAmountExceeded ErrorCode = "RF02"
	ErrorCodeRefundPeriodExpired  ErrorCode = "RF03"

	// System
	ErrorCodeSystemError  ErrorCode = "SYS01"
	ErrorCodeNetworkError ErrorCode = "SYS02"
)

// DomainError is a structured error carrying a domain error code, so callers
// can branch on Code without parsing message text
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain error code
func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// GetErrorCode extracts the code from a DomainError, or "" for other errors
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// Request construction errors
var (
	ErrInvalidAmount    = errors.New("amount must be positive with at most two fractional digits")
	ErrInvalidCurrency  = errors.New("currency is required")
	ErrCardRequired     = errors.New("card number is required")
	ErrMissingReference = errors.New("order id or transaction id is required")
)
