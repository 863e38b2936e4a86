package utils

import (
	"errors"

	"github.com/yukikurage/recipe-sharing-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooShort is returned when a password is below the minimum length.
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// HashPassword hashes a plaintext password with bcrypt. The plaintext is never
// stored; only the resulting hash is.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// A missing stored hash never matches.
func CheckPassword(hash, plaintext string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
