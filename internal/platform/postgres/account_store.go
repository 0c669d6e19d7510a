package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/eazybank/accounts/internal/platform/logger"
	"github.com/eazybank/accounts/internal/store"
	"github.com/google/uuid"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AccountStore.Create
// Returns store.ErrAccountNumberExists on an account number collision and
// store.ErrInvalidEntity if the referenced customer does not exist.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("account_number", account.Number))
		return err
	}

	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.Number,
		account.CustomerID,
		string(account.Type),
		account.BranchAddress,
		account.Audit.CreatedAt,
		account.Audit.CreatedBy,
		account.Audit.UpdatedAt,
		account.Audit.UpdatedBy,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("account number collision during creation",
				slog.Int64("account_number", account.Number))
			return MapUniqueViolation(err, store.ErrAccountNumberExists)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during account creation",
				slog.Int64("account_number", account.Number),
				slog.String("customer_id", account.CustomerID.String()))
			return fmt.Errorf("%w: customer with ID %s not found",
				store.ErrInvalidEntity, account.CustomerID)
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.Int64("account_number", account.Number))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.Int64("account_number", account.Number),
		slog.String("customer_id", account.CustomerID.String()))
	return nil
}

// GetByNumber implements store.AccountStore.GetByNumber
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by
		FROM accounts
		WHERE account_number = $1
	`

	account, err := s.scanAccount(s.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_number", number))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by number",
			slog.String("error", err.Error()),
			slog.Int64("account_number", number))
		return nil, MapError(err)
	}

	return account, nil
}

// GetByCustomerID implements store.AccountStore.GetByCustomerID
// Returns store.ErrAccountNotFound if the customer has no account.
func (s *PostgresAccountStore) GetByCustomerID(
	ctx context.Context,
	customerID uuid.UUID,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by
		FROM accounts
		WHERE customer_id = $1
	`

	account, err := s.scanAccount(s.db.QueryRowContext(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found for customer",
				slog.String("customer_id", customerID.String()))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by customer ID",
			slog.String("error", err.Error()),
			slog.String("customer_id", customerID.String()))
		return nil, MapError(err)
	}

	return account, nil
}

// Update implements store.AccountStore.Update
// Only the mutable columns and the audit update columns are written;
// created_at and created_by stay untouched.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("account_number", account.Number))
		return err
	}

	query := `
		UPDATE accounts
		SET customer_id = $2, account_type = $3, branch_address = $4, updated_at = $5, updated_by = $6
		WHERE account_number = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Number,
		account.CustomerID,
		string(account.Type),
		account.BranchAddress,
		account.Audit.UpdatedAt,
		account.Audit.UpdatedBy,
	)

	if err != nil {
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.Int64("account_number", account.Number))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "account"); err != nil {
		return store.ErrAccountNotFound
	}

	log.Info("account updated successfully",
		slog.Int64("account_number", account.Number))
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID
// Returns store.ErrAccountNotFound if the customer had no accounts.
func (s *PostgresAccountStore) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM accounts
		WHERE customer_id = $1
	`
	result, err := s.db.ExecContext(ctx, query, customerID)
	if err != nil {
		log.Error("failed to delete accounts for customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customerID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "account"); err != nil {
		return store.ErrAccountNotFound
	}

	log.Info("accounts deleted successfully",
		slog.String("customer_id", customerID.String()))
	return nil
}

// scanAccount maps an account row onto the domain entity, converting the
// nullable audit update columns.
func (s *PostgresAccountStore) scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	var accountType string
	var updatedAt sql.NullTime
	var updatedBy sql.NullString

	err := row.Scan(
		&account.Number,
		&account.CustomerID,
		&accountType,
		&account.BranchAddress,
		&account.Audit.CreatedAt,
		&account.Audit.CreatedBy,
		&updatedAt,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accountType)
	if updatedAt.Valid {
		account.Audit.UpdatedAt = &updatedAt.Time
	}
	if updatedBy.Valid {
		account.Audit.UpdatedBy = &updatedBy.String
	}

	return &account, nil
}
