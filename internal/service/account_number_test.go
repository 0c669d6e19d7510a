package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eazybank/accounts/internal/domain"
)

func TestAccountNumberGeneratorRange(t *testing.T) {
	gen := NewAccountNumberGenerator()
	require.NotNil(t, gen)

	seen := make(map[int64]struct{})
	for i := 0; i < 1000; i++ {
		n := gen.Next()
		assert.GreaterOrEqual(t, n, int64(domain.MinAccountNumber))
		assert.LessOrEqual(t, n, int64(domain.MaxAccountNumber))
		seen[n] = struct{}{}
	}

	// Not a uniformity test, just a sanity check that the generator is
	// not stuck on a single value.
	assert.Greater(t, len(seen), 1)
}
