package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(plain []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(plain, bcrypt.DefaultCost)
}

// CheckPassword compares a plaintext candidate to a stored bcrypt hash.
func CheckPassword(hash, plain []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, plain) == nil
}
