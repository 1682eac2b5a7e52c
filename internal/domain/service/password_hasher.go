// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification
// on portal accounts. It abstracts the underlying algorithm (bcrypt in the
// default implementation), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with the stored hash.
	Check(password, hash string) bool
}
