package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the pricing engine. Every component marks its
// failures with one of these so callers can tell invalid input apart
// from misconfiguration without string matching.
var (
	ErrNotFound        = new(ErrCodeNotFound, "resource not found")
	ErrValidation      = new(ErrCodeValidation, "validation error")
	ErrMissingBaseline = new(ErrCodeMissingBaseline, "no pricing baseline configured")
	ErrUnknownAddon    = new(ErrCodeUnknownAddon, "addon not registered")
	ErrDuplicateAddon  = new(ErrCodeDuplicateAddon, "addon already registered")
	ErrInvalidTemplate = new(ErrCodeInvalidTemplate, "invalid milestone template")
	ErrInvalidCoupon   = new(ErrCodeInvalidCoupon, "coupon cannot be applied")
	ErrSystem          = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:        http.StatusNotFound,
		ErrValidation:      http.StatusBadRequest,
		ErrMissingBaseline: http.StatusUnprocessableEntity,
		ErrUnknownAddon:    http.StatusNotFound,
		ErrDuplicateAddon:  http.StatusConflict,
		ErrInvalidTemplate: http.StatusUnprocessableEntity,
		ErrInvalidCoupon:   http.StatusUnprocessableEntity,
		ErrSystem:          http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound        = "not_found"
	ErrCodeValidation      = "validation_error"
	ErrCodeMissingBaseline = "missing_baseline"
	ErrCodeUnknownAddon    = "unknown_addon"
	ErrCodeDuplicateAddon  = "duplicate_addon"
	ErrCodeInvalidTemplate = "invalid_template"
	ErrCodeInvalidCoupon   = "invalid_coupon"
	ErrCodeSystemError     = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsMissingBaseline checks if an error indicates an unconfigured business unit
func IsMissingBaseline(err error) bool {
	return errors.Is(err, ErrMissingBaseline)
}

// IsUnknownAddon checks if an error refers to an unregistered addon
func IsUnknownAddon(err error) bool {
	return errors.Is(err, ErrUnknownAddon)
}

// IsDuplicateAddon checks if an error is a duplicate registration error
func IsDuplicateAddon(err error) bool {
	return errors.Is(err, ErrDuplicateAddon)
}

// IsInvalidTemplate checks if an error is a milestone template error
func IsInvalidTemplate(err error) bool {
	return errors.Is(err, ErrInvalidTemplate)
}

// IsInvalidCoupon checks if an error is a coupon validation error
func IsInvalidCoupon(err error) bool {
	return errors.Is(err, ErrInvalidCoupon)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
