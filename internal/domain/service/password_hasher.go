// Package service defines the stateless domain services the usecases
// depend on, keeping the concrete implementations out of the core.
package service

// PasswordHasher hashes and verifies account passwords. The bcrypt
// implementation lives in infra; the domain only sees this contract.
type PasswordHasher interface {
	// Hash produces a salted hash of the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
