// Package service defines interfaces for infrastructure concerns the
// use cases depend on, keeping the domain free of vendor imports.
package service

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when the password matches the stored hash.
	Compare(hashed string, password string) error
}
