package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the generic validation failure every field-level
	// sentinel below wraps, so callers can classify without enumerating.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a customer name is missing.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrNameLength is returned when a customer name is outside the 5-30 character range.
	ErrNameLength = fmt.Errorf("%w: name should be between 5 and 30 characters", ErrValidation)

	// ErrEmptyEmail is returned when a customer email is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrInvalidMobileNumber is returned when a mobile number is not exactly 10 digits.
	ErrInvalidMobileNumber = fmt.Errorf("%w: mobile number must be 10 digits", ErrValidation)

	// ErrEmptyCustomerID is returned when an account does not reference a customer.
	ErrEmptyCustomerID = fmt.Errorf("%w: customer ID cannot be empty", ErrValidation)

	// ErrInvalidAccountNumber is returned when an account number is outside
	// the 10-digit space the generator produces.
	ErrInvalidAccountNumber = fmt.Errorf("%w: invalid account number", ErrValidation)

	// ErrInvalidAccountType is returned when an account type is not one of
	// the supported values.
	ErrInvalidAccountType = fmt.Errorf("%w: invalid account type", ErrValidation)

	// ErrEmptyBranchAddress is returned when a branch address is missing.
	ErrEmptyBranchAddress = fmt.Errorf("%w: branch address cannot be empty", ErrValidation)
)

// ValidationError carries the field that failed validation alongside the
// underlying sentinel, so callers can build field-level detail.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
