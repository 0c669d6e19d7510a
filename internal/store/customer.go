package store

import (
	"context"
	"database/sql"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/google/uuid"
)

// CustomerStore defines the interface for customer data persistence.
// Implementations are passive storage adapters; all business rules,
// including audit stamping, live in the service layer.
type CustomerStore interface {
	// Create saves a new customer to the store.
	// Returns ErrMobileNumberExists if the mobile number is already registered.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by their unique ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// GetByMobileNumber retrieves a customer by their mobile number.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error)

	// Update modifies an existing customer's details and audit update fields.
	// The creation audit columns are never rewritten.
	// Returns ErrCustomerNotFound if the customer does not exist.
	// Returns ErrMobileNumberExists if updating to a mobile number already in use.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer from the store by their ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CustomerStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) CustomerStore
}
