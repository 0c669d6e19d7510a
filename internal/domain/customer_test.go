package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		customerName string
		email        string
		mobileNumber string
		wantErr      error
	}{
		{
			name:         "valid_customer",
			customerName: "Eazy Bytes",
			email:        "tutor@eazybytes.com",
			mobileNumber: "9345432123",
		},
		{
			name:         "empty_name",
			customerName: "",
			email:        "tutor@eazybytes.com",
			mobileNumber: "9345432123",
			wantErr:      ErrEmptyName,
		},
		{
			name:         "name_too_short",
			customerName: "Ada",
			email:        "tutor@eazybytes.com",
			mobileNumber: "9345432123",
			wantErr:      ErrNameLength,
		},
		{
			name:         "name_too_long",
			customerName: "This customer name is far too long to be accepted",
			email:        "tutor@eazybytes.com",
			mobileNumber: "9345432123",
			wantErr:      ErrNameLength,
		},
		{
			name:         "empty_email",
			customerName: "Eazy Bytes",
			email:        "",
			mobileNumber: "9345432123",
			wantErr:      ErrEmptyEmail,
		},
		{
			name:         "email_without_at",
			customerName: "Eazy Bytes",
			email:        "tutor.eazybytes.com",
			mobileNumber: "9345432123",
			wantErr:      ErrInvalidEmail,
		},
		{
			name:         "email_without_domain_dot",
			customerName: "Eazy Bytes",
			email:        "tutor@eazybytes",
			mobileNumber: "9345432123",
			wantErr:      ErrInvalidEmail,
		},
		{
			name:         "mobile_number_too_short",
			customerName: "Eazy Bytes",
			email:        "tutor@eazybytes.com",
			mobileNumber: "12345",
			wantErr:      ErrInvalidMobileNumber,
		},
		{
			name:         "mobile_number_with_letters",
			customerName: "Eazy Bytes",
			email:        "tutor@eazybytes.com",
			mobileNumber: "93454321ab",
			wantErr:      ErrInvalidMobileNumber,
		},
		{
			name:         "empty_mobile_number",
			customerName: "Eazy Bytes",
			email:        "tutor@eazybytes.com",
			mobileNumber: "",
			wantErr:      ErrInvalidMobileNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := NewCustomer(tt.customerName, tt.email, tt.mobileNumber, "ACCOUNTS_MS", now)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, customer)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, customer)
			assert.NotEqual(t, uuid.Nil, customer.ID)
			assert.Equal(t, tt.customerName, customer.Name)
			assert.Equal(t, tt.email, customer.Email)
			assert.Equal(t, tt.mobileNumber, customer.MobileNumber)
			assert.Equal(t, now, customer.Audit.CreatedAt)
			assert.Equal(t, "ACCOUNTS_MS", customer.Audit.CreatedBy)
			assert.Nil(t, customer.Audit.UpdatedAt)
			assert.Nil(t, customer.Audit.UpdatedBy)
		})
	}
}

func TestCustomerValidationErrorDetail(t *testing.T) {
	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	// 10 characters but not 10 digits.
	customer, err := NewCustomer("Eazy Bytes", "tutor@eazybytes.com", "9.45432123", "ACCOUNTS_MS", now)
	require.Error(t, err)
	assert.Nil(t, customer)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "MobileNumber", validationErr.Field)
	assert.Equal(t, "Mobile number must be 10 digits", validationErr.Message)

	// Both the specific sentinel and the generic category match.
	assert.ErrorIs(t, err, ErrInvalidMobileNumber)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCustomerValidateRequiresID(t *testing.T) {
	customer := Customer{
		Name:         "Eazy Bytes",
		Email:        "tutor@eazybytes.com",
		MobileNumber: "9345432123",
	}

	assert.ErrorIs(t, customer.Validate(), ErrEmptyCustomerID)
}
