package domain

import "time"

// Audit holds the auditing metadata attached to every persisted entity.
// CreatedAt and CreatedBy are written exactly once, when the entity is
// first persisted. UpdatedAt and UpdatedBy are nil until the first
// mutation and are rewritten on every subsequent one.
type Audit struct {
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy *string    `json:"updated_by,omitempty"`
}

// NewAudit returns the audit metadata for a freshly created entity.
// The update fields stay unset until the first mutation.
func NewAudit(actor string, now time.Time) Audit {
	return Audit{
		CreatedAt: now,
		CreatedBy: actor,
	}
}

// StampUpdate records an update by the given actor. The creation fields
// are never touched.
func (a *Audit) StampUpdate(actor string, now time.Time) {
	a.UpdatedAt = &now
	a.UpdatedBy = &actor
}
