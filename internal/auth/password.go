// Package auth implements the stored-credential codec: scrypt password
// hashing, recognition of hashed values, and verification against both
// hashed and legacy plaintext records.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	hashTag    = "scrypt"
	hashPrefix = hashTag + "$"

	saltBytes = 16
	keyBytes  = 64

	// scrypt cost parameters. Existing credential records were derived
	// with these exact values, so they must never change without a
	// re-hash migration.
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a stored credential record from a plaintext
// password. The result has the form "scrypt$<saltHex>$<digestHex>" with a
// fresh random salt on every call.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(plaintext), []byte(saltHex), scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hashPrefix + saltHex + "$" + hex.EncodeToString(key), nil
}

// IsHashed reports whether a stored password value is a hashed credential
// record rather than a legacy plaintext password.
func IsHashed(value string) bool {
	return strings.HasPrefix(value, hashPrefix)
}

// Verify checks a plaintext password against a stored value. Legacy
// plaintext records are compared by exact string equality; hashed records
// are re-derived with the stored salt and compared in constant time.
// Any malformed hashed record fails closed.
func Verify(plaintext, stored string) bool {
	if !IsHashed(stored) {
		return plaintext == stored
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false
	}

	saltHex := parts[1]
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got, err := scrypt.Key([]byte(plaintext), []byte(saltHex), scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return false
	}

	// Length alone does not leak the secret, so it may short-circuit.
	if len(want) != len(got) {
		return false
	}

	return subtle.ConstantTimeCompare(want, got) == 1
}
