package service

// AuditorFunc supplies the identity of the current actor for audit
// stamping. It is queried once per mutating operation and must be
// side-effect-free.
type AuditorFunc func() string

// systemAuditor is the actor recorded when no caller identity is
// available, i.e. the service itself.
const systemAuditor = "ACCOUNTS_MS"

// SystemAuditor returns the service's own identity. It is the default
// AuditorFunc until an authentication layer provides a real one.
func SystemAuditor() string {
	return systemAuditor
}
