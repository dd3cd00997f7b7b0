// Package auth covers credential hashing and session token generation.
package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether candidate matches the stored digest.
func CheckPassword(digest, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}

// NewToken returns a fresh random session token.
func NewToken() string {
	return uuid.NewString()
}
