package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in AccountsServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrCustomerAlreadyExists indicates a customer with the given mobile
	// number is already registered. API layer maps this to HTTP 400.
	ErrCustomerAlreadyExists = errors.New("customer already registered with given mobile number")

	// ErrCustomerNotFound indicates the requested customer does not exist.
	// API layer maps this to HTTP 404.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAccountNotFound indicates the requested account does not exist.
	// API layer maps this to HTTP 404.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountsServiceError wraps unexpected errors from the accounts service
// with operation context.
type AccountsServiceError struct {
	// Operation is the operation that failed (e.g., "create_account")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AccountsServiceError.
func (e *AccountsServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("accounts service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("accounts service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AccountsServiceError) Unwrap() error {
	return e.Err
}

// NewAccountsServiceError creates a new AccountsServiceError.
// Known sentinel errors pass through unwrapped.
func NewAccountsServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrCustomerAlreadyExists) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrAccountNotFound) {
		return err
	}

	return &AccountsServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
