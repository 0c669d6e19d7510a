// Package domain contains the core business entities of the accounts
// service: customers, their bank accounts, and the audit metadata both
// carry. It is independent of any transport or storage mechanism.
package domain
