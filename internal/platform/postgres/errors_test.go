package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eazybank/accounts/internal/store"
)

// fakeResult implements sql.Result for testing CheckRowsAffected.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil_passes_through",
			err:  nil,
			want: nil,
		},
		{
			name: "no_rows_maps_to_not_found",
			err:  sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "unique_violation_maps_to_duplicate",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "customer_mobile_number_key"},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign_key_violation_maps_to_invalid_entity",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "accounts_customer_id_fkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "check_violation_maps_to_invalid_entity",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "accounts_number_range"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "not_null_violation_maps_to_invalid_entity",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "name"},
			want: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unknown_errors_pass_through", func(t *testing.T) {
		original := errors.New("connection reset by peer")
		assert.Equal(t, original, MapError(original))
	})

	t.Run("wrapped_pg_errors_are_recognized", func(t *testing.T) {
		wrapped := fmt.Errorf("inserting customer: %w",
			&pgconn.PgError{Code: "23505", ConstraintName: "customer_mobile_number_key"})
		assert.ErrorIs(t, MapError(wrapped), store.ErrDuplicate)
	})
}

func TestMapUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "customer_mobile_number_key"}

	t.Run("maps_to_specific_error", func(t *testing.T) {
		got := MapUniqueViolation(uniqueErr, store.ErrMobileNumberExists)
		assert.ErrorIs(t, got, store.ErrMobileNumberExists)
		assert.ErrorIs(t, got, store.ErrDuplicate)
	})

	t.Run("other_errors_pass_through", func(t *testing.T) {
		original := errors.New("connection reset by peer")
		assert.Equal(t, original, MapUniqueViolation(original, store.ErrMobileNumberExists))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("affected_rows_is_fine", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, "customer"))
	})

	t.Run("zero_rows_is_not_found", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, "customer")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("zero_rows_without_entity_name", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows_affected_failure_is_surfaced", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("driver does not support RowsAffected")}, "customer")
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nil_result_is_an_error", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, "customer"))
	})
}
