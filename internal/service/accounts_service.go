package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/eazybank/accounts/internal/domain"
	"github.com/eazybank/accounts/internal/store"
)

// Defaults applied to every newly created account.
const (
	defaultAccountType   = domain.AccountTypeSavings
	defaultBranchAddress = "123 Main Street, New York"
)

// maxAccountNumberAttempts bounds the retries on an account number
// collision before the create operation gives up.
const maxAccountNumberAttempts = 5

// CreateCustomerInput carries the already format-validated fields for
// creating a customer and their account.
type CreateCustomerInput struct {
	Name         string
	Email        string
	MobileNumber string
}

// AccountDetails is the account side of the composite read-only view.
type AccountDetails struct {
	AccountNumber int64
	AccountType   domain.AccountType
	BranchAddress string
}

// CustomerDetails is the composite customer+account projection returned
// by fetch. Audit fields are deliberately not exposed.
type CustomerDetails struct {
	Name         string
	Email        string
	MobileNumber string
	Account      AccountDetails
}

// UpdateAccountInput carries the full composite payload for update.
// The account number is the primary key for the account side.
type UpdateAccountInput struct {
	Name          string
	Email         string
	MobileNumber  string
	AccountNumber int64
	AccountType   domain.AccountType
	BranchAddress string
}

// AccountsService provides the customer+account record management operations.
type AccountsService interface {
	// CreateAccount registers a new customer together with a freshly
	// numbered account in one transaction. It returns
	// ErrCustomerAlreadyExists if the mobile number is already on file.
	// Nothing beyond the error is returned; the boundary layer answers
	// with a generic created acknowledgement.
	CreateAccount(ctx context.Context, input CreateCustomerInput) error

	// FetchAccount returns the composite customer+account view for the
	// given mobile number. It returns ErrCustomerNotFound or
	// ErrAccountNotFound when either half is missing.
	FetchAccount(ctx context.Context, mobileNumber string) (*CustomerDetails, error)

	// UpdateAccount updates the account identified by the input's account
	// number together with its owning customer, re-stamping the audit
	// update fields on both. It reports false, without an error, when the
	// account does not exist.
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (bool, error)

	// DeleteAccount removes the customer with the given mobile number and
	// their account in one transaction. It reports false, without an
	// error, when no such customer exists.
	DeleteAccount(ctx context.Context, mobileNumber string) (bool, error)
}

// accountsServiceImpl implements the AccountsService interface.
type accountsServiceImpl struct {
	customers store.CustomerStore
	accounts  store.AccountStore
	numbers   AccountNumberGenerator
	auditor   AuditorFunc
	tx        store.TxRunner
	logger    *slog.Logger
}

// NewAccountsService creates a new AccountsService.
// It returns an error if any of the required dependencies are nil.
func NewAccountsService(
	customers store.CustomerStore,
	accounts store.AccountStore,
	numbers AccountNumberGenerator,
	auditor AuditorFunc,
	tx store.TxRunner,
	logger *slog.Logger,
) (AccountsService, error) {
	if customers == nil {
		return nil, &AccountsServiceError{Operation: "create_service", Message: "customers store cannot be nil"}
	}
	if accounts == nil {
		return nil, &AccountsServiceError{Operation: "create_service", Message: "accounts store cannot be nil"}
	}
	if numbers == nil {
		return nil, &AccountsServiceError{Operation: "create_service", Message: "account number generator cannot be nil"}
	}
	if auditor == nil {
		auditor = SystemAuditor
	}
	if tx == nil {
		return nil, &AccountsServiceError{Operation: "create_service", Message: "transaction runner cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountsServiceImpl{
		customers: customers,
		accounts:  accounts,
		numbers:   numbers,
		auditor:   auditor,
		tx:        tx,
		logger:    logger.With(slog.String("component", "accounts_service")),
	}, nil
}

// CreateAccount implements AccountsService.CreateAccount.
// The customer and account writes commit or roll back together.
func (s *accountsServiceImpl) CreateAccount(ctx context.Context, input CreateCustomerInput) error {
	actor := s.auditor()
	now := time.Now().UTC()

	customer, err := domain.NewCustomer(input.Name, input.Email, input.MobileNumber, actor, now)
	if err != nil {
		s.logger.Warn("invalid customer input",
			"error", err,
			"mobile_number", input.MobileNumber)
		return NewAccountsServiceError("create_account", "invalid customer data", err)
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txCustomers := s.customers.WithTx(tx)
		txAccounts := s.accounts.WithTx(tx)

		// Precondition check. The unique key on mobile_number closes the
		// remaining race window between check and insert.
		_, err := txCustomers.GetByMobileNumber(ctx, input.MobileNumber)
		if err == nil {
			return ErrCustomerAlreadyExists
		}
		if !errors.Is(err, store.ErrCustomerNotFound) {
			return NewAccountsServiceError("create_account", "failed to check mobile number", err)
		}

		if err := txCustomers.Create(ctx, customer); err != nil {
			if errors.Is(err, store.ErrMobileNumberExists) {
				return ErrCustomerAlreadyExists
			}
			return NewAccountsServiceError("create_account", "failed to save customer", err)
		}

		return s.createNumberedAccount(ctx, txAccounts, customer, actor, now)
	})
	if err != nil {
		return err
	}

	s.logger.Info("customer and account created",
		"customer_id", customer.ID,
		"mobile_number", customer.MobileNumber)
	return nil
}

// createNumberedAccount persists a new account for the customer, retrying
// with a fresh number when the generator collides with an existing one.
func (s *accountsServiceImpl) createNumberedAccount(
	ctx context.Context,
	accounts store.AccountStore,
	customer *domain.Customer,
	actor string,
	now time.Time,
) error {
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		account, err := domain.NewAccount(
			s.numbers.Next(),
			customer.ID,
			defaultAccountType,
			defaultBranchAddress,
			actor,
			now,
		)
		if err != nil {
			return NewAccountsServiceError("create_account", "invalid account data", err)
		}

		err = accounts.Create(ctx, account)
		if err == nil {
			return nil
		}
		if errors.Is(err, store.ErrAccountNumberExists) {
			s.logger.Warn("account number collision, retrying",
				"account_number", account.Number,
				"attempt", attempt+1)
			continue
		}
		return NewAccountsServiceError("create_account", "failed to save account", err)
	}

	return NewAccountsServiceError(
		"create_account",
		"exhausted account number generation attempts",
		store.ErrAccountNumberExists,
	)
}

// FetchAccount implements AccountsService.FetchAccount.
func (s *accountsServiceImpl) FetchAccount(
	ctx context.Context,
	mobileNumber string,
) (*CustomerDetails, error) {
	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, NewAccountsServiceError("fetch_account", "failed to retrieve customer", err)
	}

	account, err := s.accounts.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, NewAccountsServiceError("fetch_account", "failed to retrieve account", err)
	}

	return &CustomerDetails{
		Name:         customer.Name,
		Email:        customer.Email,
		MobileNumber: customer.MobileNumber,
		Account: AccountDetails{
			AccountNumber: account.Number,
			AccountType:   account.Type,
			BranchAddress: account.BranchAddress,
		},
	}, nil
}

// UpdateAccount implements AccountsService.UpdateAccount.
// A missing account is a soft failure: false with a nil error. Both the
// account and the owning customer are updated in one transaction, each
// with fresh audit update stamps.
func (s *accountsServiceImpl) UpdateAccount(
	ctx context.Context,
	input UpdateAccountInput,
) (bool, error) {
	actor := s.auditor()
	now := time.Now().UTC()
	updated := false

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txCustomers := s.customers.WithTx(tx)
		txAccounts := s.accounts.WithTx(tx)

		account, err := txAccounts.GetByNumber(ctx, input.AccountNumber)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				// Soft failure: the boundary layer reports "not updated".
				return nil
			}
			return NewAccountsServiceError("update_account", "failed to retrieve account", err)
		}

		account.Type = input.AccountType
		account.BranchAddress = input.BranchAddress
		account.Audit.StampUpdate(actor, now)
		if err := txAccounts.Update(ctx, account); err != nil {
			return NewAccountsServiceError("update_account", "failed to save account", err)
		}

		customer, err := txCustomers.GetByID(ctx, account.CustomerID)
		if err != nil {
			return NewAccountsServiceError("update_account", "failed to retrieve customer", err)
		}

		customer.Name = input.Name
		customer.Email = input.Email
		customer.MobileNumber = input.MobileNumber
		customer.Audit.StampUpdate(actor, now)
		if err := txCustomers.Update(ctx, customer); err != nil {
			return NewAccountsServiceError("update_account", "failed to save customer", err)
		}

		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if updated {
		s.logger.Info("customer and account updated",
			"account_number", input.AccountNumber)
	} else {
		s.logger.Debug("update skipped, account not found",
			"account_number", input.AccountNumber)
	}
	return updated, nil
}

// DeleteAccount implements AccountsService.DeleteAccount.
// A missing customer is a soft failure: false with a nil error. The
// customer and their account are removed together; the account rows go
// first so the customer is never left referenced.
func (s *accountsServiceImpl) DeleteAccount(
	ctx context.Context,
	mobileNumber string,
) (bool, error) {
	deleted := false

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txCustomers := s.customers.WithTx(tx)
		txAccounts := s.accounts.WithTx(tx)

		customer, err := txCustomers.GetByMobileNumber(ctx, mobileNumber)
		if err != nil {
			if errors.Is(err, store.ErrCustomerNotFound) {
				// Soft failure: the boundary layer reports "not deleted".
				return nil
			}
			return NewAccountsServiceError("delete_account", "failed to retrieve customer", err)
		}

		if err := txAccounts.DeleteByCustomerID(ctx, customer.ID); err != nil {
			if !errors.Is(err, store.ErrAccountNotFound) {
				return NewAccountsServiceError("delete_account", "failed to delete account", err)
			}
			// A customer without an account can still be deleted.
		}

		if err := txCustomers.Delete(ctx, customer.ID); err != nil {
			return NewAccountsServiceError("delete_account", "failed to delete customer", err)
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("customer and account deleted",
			"mobile_number", mobileNumber)
	} else {
		s.logger.Debug("delete skipped, customer not found",
			"mobile_number", mobileNumber)
	}
	return deleted, nil
}
