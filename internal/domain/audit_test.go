package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditStamping(t *testing.T) {
	created := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	audit := NewAudit("ACCOUNTS_MS", created)

	assert.Equal(t, created, audit.CreatedAt)
	assert.Equal(t, "ACCOUNTS_MS", audit.CreatedBy)
	assert.Nil(t, audit.UpdatedAt)
	assert.Nil(t, audit.UpdatedBy)

	audit.StampUpdate("TELLER_42", updated)

	// Creation fields are write-once.
	assert.Equal(t, created, audit.CreatedAt)
	assert.Equal(t, "ACCOUNTS_MS", audit.CreatedBy)
	require.NotNil(t, audit.UpdatedAt)
	require.NotNil(t, audit.UpdatedBy)
	assert.Equal(t, updated, *audit.UpdatedAt)
	assert.Equal(t, "TELLER_42", *audit.UpdatedBy)

	// Every further mutation rewrites the update fields.
	later := updated.Add(time.Hour)
	audit.StampUpdate("ACCOUNTS_MS", later)
	assert.Equal(t, later, *audit.UpdatedAt)
	assert.Equal(t, "ACCOUNTS_MS", *audit.UpdatedBy)
}
