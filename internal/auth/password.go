package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor the account collections were
// hashed with; changing it only affects newly written hashes.
const DefaultBcryptCost = 12

// HashPassword derives the stored secret from a plaintext password. Callers
// invoke it on the write path only when a new password is supplied, so an
// update that leaves the password alone never re-hashes the stored value.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// It fails closed: malformed hashes and comparison errors read as mismatch.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
