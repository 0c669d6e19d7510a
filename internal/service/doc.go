// Package service contains the application-specific use cases of the
// accounts service. It orchestrates the customer and account stores to
// implement create/fetch/update/delete semantics, enforces the
// cross-entity invariants (mobile number uniqueness, no orphaned
// accounts), stamps audit metadata on every mutation, and applies the
// transactional boundaries when an operation spans both entities.
//
// Error contract: create and fetch raise typed failures; update and
// delete report a boolean soft failure when the target does not exist.
// The API layer maps both onto HTTP status codes.
package service
