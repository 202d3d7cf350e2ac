// Package auth handles account secret-key credentials. The account
// model only ever stores the hash; verification is the single operation
// exposed to the rest of the system.
package auth

import (
	"errors"
	"fmt"

	"github.com/felixbank/bank-back/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minSecretKeyLength = 6

// HashSecretKey validates and hashes a plain secret key for storage.
func HashSecretKey(secretKey string) (string, error) {
	if len(secretKey) < minSecretKeyLength {
		return "", models.NewError(models.ErrCodeValidationRange, "secret key must be at least %d characters", minSecretKeyLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secretKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret key: %w", err)
	}
	return string(hashed), nil
}

// VerifySecretKey checks a plain secret key against the stored hash. A
// mismatch reports not_found semantics to the caller deliberately: the
// API never distinguishes "wrong key" from "no such account".
func VerifySecretKey(storedHash, secretKey string) error {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secretKey))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return models.NewError(models.ErrCodeNotFound, "account not found or secret key does not match")
	}
	return fmt.Errorf("failed to verify secret key: %w", err)
}
