// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, keeping the customer and account business rules
// independent of any specific database technology.
package store
