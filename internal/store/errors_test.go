package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitySpecificErrorsWrapGenericOnes(t *testing.T) {
	assert.ErrorIs(t, ErrCustomerNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrAccountNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrMobileNumberExists, ErrDuplicate)
	assert.ErrorIs(t, ErrAccountNumberExists, ErrDuplicate)

	// The categories do not overlap.
	assert.NotErrorIs(t, ErrCustomerNotFound, ErrDuplicate)
	assert.NotErrorIs(t, ErrMobileNumberExists, ErrNotFound)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrCustomerNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("loading customer: %w", ErrAccountNotFound)))
	assert.False(t, IsNotFoundError(ErrMobileNumberExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	assert.True(t, IsDuplicateError(ErrAccountNumberExists))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("customer", "create", "insert failed", cause)

	assert.Contains(t, err.Error(), "create operation on customer failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &storeErr)
	assert.Equal(t, "customer", storeErr.Entity)
}
