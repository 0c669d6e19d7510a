package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/eazybank/accounts/internal/platform/logger"
	"github.com/eazybank/accounts/internal/store"
	"github.com/google/uuid"
)

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the
// CustomerStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// WithTx implements store.CustomerStore.WithTx
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CustomerStore.Create
// Returns store.ErrMobileNumberExists if the mobile number is already registered.
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return err
	}

	query := `
		INSERT INTO customer (customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.Audit.CreatedAt,
		customer.Audit.CreatedBy,
		customer.Audit.UpdatedAt,
		customer.Audit.UpdatedBy,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate mobile number during customer creation",
				slog.String("customer_id", customer.ID.String()),
				slog.String("mobile_number", customer.MobileNumber))
			return MapUniqueViolation(err, store.ErrMobileNumberExists)
		}

		log.Error("failed to create customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return MapError(err)
	}

	log.Info("customer created successfully",
		slog.String("customer_id", customer.ID.String()))
	return nil
}

// GetByID implements store.CustomerStore.GetByID
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by
		FROM customer
		WHERE customer_id = $1
	`

	customer, err := s.scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found", slog.String("customer_id", id.String()))
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by ID",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return nil, MapError(err)
	}

	return customer, nil
}

// GetByMobileNumber implements store.CustomerStore.GetByMobileNumber
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by
		FROM customer
		WHERE mobile_number = $1
	`

	customer, err := s.scanCustomer(s.db.QueryRowContext(ctx, query, mobileNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found",
				slog.String("mobile_number", mobileNumber))
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by mobile number",
			slog.String("error", err.Error()),
			slog.String("mobile_number", mobileNumber))
		return nil, MapError(err)
	}

	return customer, nil
}

// Update implements store.CustomerStore.Update
// Only the mutable columns and the audit update columns are written;
// created_at and created_by stay untouched.
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during update",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return err
	}

	query := `
		UPDATE customer
		SET name = $2, email = $3, mobile_number = $4, updated_at = $5, updated_by = $6
		WHERE customer_id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.Audit.UpdatedAt,
		customer.Audit.UpdatedBy,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrMobileNumberExists)
		}
		log.Error("failed to update customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "customer"); err != nil {
		return store.ErrCustomerNotFound
	}

	log.Info("customer updated successfully",
		slog.String("customer_id", customer.ID.String()))
	return nil
}

// Delete implements store.CustomerStore.Delete
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM customer
		WHERE customer_id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "customer"); err != nil {
		return store.ErrCustomerNotFound
	}

	log.Info("customer deleted successfully",
		slog.String("customer_id", id.String()))
	return nil
}

// scanCustomer maps a customer row onto the domain entity, converting the
// nullable audit update columns.
func (s *PostgresCustomerStore) scanCustomer(row *sql.Row) (*domain.Customer, error) {
	var customer domain.Customer
	var updatedAt sql.NullTime
	var updatedBy sql.NullString

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.MobileNumber,
		&customer.Audit.CreatedAt,
		&customer.Audit.CreatedBy,
		&updatedAt,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		customer.Audit.UpdatedAt = &updatedAt.Time
	}
	if updatedBy.Valid {
		customer.Audit.UpdatedBy = &updatedBy.String
	}

	return &customer, nil
}
