package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	customerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	tests := []struct {
		name          string
		number        int64
		customerID    uuid.UUID
		accountType   AccountType
		branchAddress string
		wantErr       error
	}{
		{
			name:          "valid_savings_account",
			number:        1234567890,
			customerID:    customerID,
			accountType:   AccountTypeSavings,
			branchAddress: "123 Main Street, New York",
		},
		{
			name:          "valid_checking_account",
			number:        1999999999,
			customerID:    customerID,
			accountType:   AccountTypeChecking,
			branchAddress: "123 Main Street, New York",
		},
		{
			name:          "number_below_range",
			number:        999999999,
			customerID:    customerID,
			accountType:   AccountTypeSavings,
			branchAddress: "123 Main Street, New York",
			wantErr:       ErrInvalidAccountNumber,
		},
		{
			name:          "number_above_range",
			number:        2000000000,
			customerID:    customerID,
			accountType:   AccountTypeSavings,
			branchAddress: "123 Main Street, New York",
			wantErr:       ErrInvalidAccountNumber,
		},
		{
			name:          "missing_customer",
			number:        1234567890,
			customerID:    uuid.Nil,
			accountType:   AccountTypeSavings,
			branchAddress: "123 Main Street, New York",
			wantErr:       ErrEmptyCustomerID,
		},
		{
			name:          "unknown_account_type",
			number:        1234567890,
			customerID:    customerID,
			accountType:   AccountType("Bonds"),
			branchAddress: "123 Main Street, New York",
			wantErr:       ErrInvalidAccountType,
		},
		{
			name:          "empty_branch_address",
			number:        1234567890,
			customerID:    customerID,
			accountType:   AccountTypeSavings,
			branchAddress: "",
			wantErr:       ErrEmptyBranchAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(tt.number, tt.customerID, tt.accountType, tt.branchAddress, "ACCOUNTS_MS", now)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, account)
			assert.Equal(t, tt.number, account.Number)
			assert.Equal(t, tt.customerID, account.CustomerID)
			assert.Equal(t, tt.accountType, account.Type)
			assert.Equal(t, now, account.Audit.CreatedAt)
			assert.Equal(t, "ACCOUNTS_MS", account.Audit.CreatedBy)
			assert.Nil(t, account.Audit.UpdatedAt)
		})
	}
}

func TestAccountTypeIsValid(t *testing.T) {
	assert.True(t, AccountTypeSavings.IsValid())
	assert.True(t, AccountTypeChecking.IsValid())
	assert.False(t, AccountType("").IsValid())
	assert.False(t, AccountType("savings").IsValid())
}
