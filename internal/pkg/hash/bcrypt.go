// Package hash wraps bcrypt behind a small hasher type so the auth service
// stays ignorant of the digest format.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptDigest signals that a stored digest could not be parsed. It is an
// internal fault, never a credential mismatch.
var ErrCorruptDigest = errors.New("corrupt password digest")

// Bcrypt hashes and verifies passwords using bcrypt with a per-call salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher. Cost values outside bcrypt's valid range
// fall back to the library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash derives a salted digest from plaintext. Two calls on the same input
// yield different digests.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil);
// an unparseable digest is (false, ErrCorruptDigest).
func (b *Bcrypt) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrCorruptDigest, err)
	}
}
