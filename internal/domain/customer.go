package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Customer represents a registered bank customer, identified externally
// by a unique mobile number.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	Audit        Audit     `json:"audit"`
}

// NewCustomer creates a new Customer with a generated ID and stamped
// creation audit fields. Returns an error if validation fails.
func NewCustomer(name, email, mobileNumber, actor string, now time.Time) (*Customer, error) {
	customer := &Customer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
		Audit:        NewAudit(actor, now),
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate checks if the Customer has valid data.
// Returns an error if any field fails validation.
func (c *Customer) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("CustomerID", "Customer ID cannot be empty", ErrEmptyCustomerID)
	}

	if c.Name == "" {
		return NewValidationError("Name", "Name cannot be empty", ErrEmptyName)
	}
	if n := utf8.RuneCountInString(c.Name); n < 5 || n > 30 {
		return NewValidationError("Name", "Name should be between 5 and 30 characters", ErrNameLength)
	}

	if c.Email == "" {
		return NewValidationError("Email", "Email cannot be empty", ErrEmptyEmail)
	}
	if !validEmail(c.Email) {
		return NewValidationError("Email", "Email should be valid", ErrInvalidEmail)
	}

	if !validMobileNumber(c.MobileNumber) {
		return NewValidationError("MobileNumber", "Mobile number must be 10 digits", ErrInvalidMobileNumber)
	}

	return nil
}

// validEmail performs basic validation of email format: a single @ with a
// dotted domain part. Format validation proper happens at the API boundary;
// this is the last line of defence before persistence.
func validEmail(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false
			}
			atIndex = i
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	dotIndex := -1
	for i, char := range domain {
		if char == '.' {
			dotIndex = i
		}
	}

	return dotIndex > 0 && dotIndex < len(domain)-1
}

// validMobileNumber reports whether the value is exactly 10 ASCII digits.
func validMobileNumber(mobileNumber string) bool {
	if len(mobileNumber) != 10 {
		return false
	}
	for _, char := range mobileNumber {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
