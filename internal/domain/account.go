package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountType enumerates the supported kinds of bank account.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// Account number space: 10-digit numbers starting with 1.
const (
	MinAccountNumber int64 = 1_000_000_000
	MaxAccountNumber int64 = 1_999_999_999
)

// IsValid reports whether the account type is one of the supported values.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking:
		return true
	}
	return false
}

// Account represents a bank account owned by exactly one customer.
// The account number is system-generated and immutable.
type Account struct {
	Number        int64       `json:"account_number"`
	CustomerID    uuid.UUID   `json:"customer_id"`
	Type          AccountType `json:"account_type"`
	BranchAddress string      `json:"branch_address"`
	Audit         Audit       `json:"audit"`
}

// NewAccount creates a new Account for the given customer with stamped
// creation audit fields. Returns an error if validation fails.
func NewAccount(
	number int64,
	customerID uuid.UUID,
	accountType AccountType,
	branchAddress string,
	actor string,
	now time.Time,
) (*Account, error) {
	account := &Account{
		Number:        number,
		CustomerID:    customerID,
		Type:          accountType,
		BranchAddress: branchAddress,
		Audit:         NewAudit(actor, now),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.Number < MinAccountNumber || a.Number > MaxAccountNumber {
		return NewValidationError("AccountNumber", "Account number must be 10 digits", ErrInvalidAccountNumber)
	}

	if a.CustomerID == uuid.Nil {
		return NewValidationError("CustomerID", "Customer ID cannot be empty", ErrEmptyCustomerID)
	}

	if !a.Type.IsValid() {
		return NewValidationError("AccountType", "Account type must be Savings or Checking", ErrInvalidAccountType)
	}

	if a.BranchAddress == "" {
		return NewValidationError("BranchAddress", "Branch address cannot be empty", ErrEmptyBranchAddress)
	}

	return nil
}
