package store

import (
	"context"
	"database/sql"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/google/uuid"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// Returns ErrAccountNumberExists if the account number is already taken
	// (generator collision; callers retry with a fresh number).
	// Returns ErrInvalidEntity if the referenced customer does not exist.
	Create(ctx context.Context, account *domain.Account) error

	// GetByNumber retrieves an account by its account number.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByNumber(ctx context.Context, number int64) (*domain.Account, error)

	// GetByCustomerID retrieves the account owned by the given customer.
	// Returns ErrAccountNotFound if no such account exists.
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error)

	// Update modifies an existing account's details and audit update fields.
	// The creation audit columns are never rewritten.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// DeleteByCustomerID removes all accounts owned by the given customer.
	// Deleting a customer must never leave an orphaned account behind.
	// Returns ErrAccountNotFound if the customer had no accounts.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) AccountStore
}
