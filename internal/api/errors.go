package api

import (
	"errors"
	"net/http"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/eazybank/accounts/internal/service"
	"github.com/eazybank/accounts/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrAccountNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate resource errors. The original API reports an existing
	// mobile number as a bad request rather than a conflict.
	case errors.Is(err, service.ErrCustomerAlreadyExists),
		store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Bad request errors. Domain validation is the backstop for anything
	// that slips past the boundary checks; it is still the client's fault.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Domain validation failures carry their own field-level message.
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, service.ErrCustomerAlreadyExists):
		return "Customer already registered with the given mobile number"

	case errors.Is(err, service.ErrCustomerNotFound):
		return "Customer not found with the given mobile number"

	case errors.Is(err, service.ErrAccountNotFound):
		return "Account not found for the given customer"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred. Please try again or contact Dev team"
	}
}

// BuildValidationErrors converts validator failures into the field-level
// detail map returned with a 400 response.
func BuildValidationErrors(err error) map[string]string {
	validationErrors := make(map[string]string)

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		validationErrors["request"] = "Invalid request format"
		return validationErrors
	}

	for _, fe := range fieldErrors {
		validationErrors[fe.Field()] = fieldErrorMessage(fe)
	}
	return validationErrors
}

// fieldErrorMessage maps a single field failure onto the message the API
// documents for that field and constraint.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name cannot be empty"
		}
		return "Name should be between 5 and 30 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email cannot be empty"
		}
		return "Email should be valid"
	case "MobileNumber":
		return "Mobile number must be 10 digits"
	case "AccountNumber":
		return "Account number must be 10 digits"
	case "AccountType":
		return "Account type must be Savings or Checking"
	case "BranchAddress":
		return "Branch address cannot be empty"
	}

	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "oneof":
		return "Invalid value"
	default:
		return "Validation failed"
	}
}
