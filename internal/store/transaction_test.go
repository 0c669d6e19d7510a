package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingConnector refuses every connection attempt, so BeginTx fails
// before any transaction work can start.
type failingConnector struct{}

func (failingConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

func (failingConnector) Driver() driver.Driver { return nil }

func TestRunInTransactionBeginFailure(t *testing.T) {
	db := sql.OpenDB(failingConnector{})
	t.Cleanup(func() { _ = db.Close() })

	runner := NewSQLTxRunner(db)

	invoked := false
	err := runner.RunInTransaction(context.Background(), func(_ context.Context, _ *sql.Tx) error {
		invoked = true
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransactionFailed)
	assert.False(t, invoked, "the transaction function must not run without a transaction")
}
