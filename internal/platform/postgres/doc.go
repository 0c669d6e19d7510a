// Package postgres provides PostgreSQL-specific implementations for the
// data storage interfaces (repositories) defined in the internal/store
// package. It handles query execution and the mapping between domain
// entities and database records, including translating PostgreSQL error
// codes into the store error taxonomy.
package postgres
