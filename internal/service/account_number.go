package service

import (
	"math/rand"

	"github.com/eazybank/accounts/internal/domain"
)

// AccountNumberGenerator produces new account numbers for creation.
// Generated numbers are practically unique but not guaranteed so; the
// account number primary key is the enforcement backstop, and callers
// retry on a persistence-time collision.
type AccountNumberGenerator interface {
	// Next returns a fresh 10-digit account number.
	Next() int64
}

// randomAccountNumberGenerator draws uniformly from the 10-digit account
// number space. math/rand's global source is safe for concurrent use,
// so no locking is needed across in-flight create operations.
type randomAccountNumberGenerator struct{}

// NewAccountNumberGenerator creates the default random generator.
func NewAccountNumberGenerator() AccountNumberGenerator {
	return randomAccountNumberGenerator{}
}

// Next implements AccountNumberGenerator.
func (randomAccountNumberGenerator) Next() int64 {
	span := domain.MaxAccountNumber - domain.MinAccountNumber + 1
	return domain.MinAccountNumber + rand.Int63n(span)
}
