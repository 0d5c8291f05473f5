// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every new digest.
const Cost = 10

// Hash returns a salted bcrypt digest of plaintext. Two calls with the same
// input produce different digests.
func Hash(plaintext string) (string, error) {
	const op = "password.Hash"
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is a mismatch.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
