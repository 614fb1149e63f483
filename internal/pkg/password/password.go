package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MaxLength is the longest plaintext bcrypt will accept
	MaxLength = 72
)

var (
	ErrCorruptCredential = errors.New("stored credential is corrupt")
	ErrPasswordTooLong   = errors.New("password exceeds 72 bytes")
)

// Hasher hashes and verifies passwords with bcrypt
type Hasher struct {
	Cost int
}

// NewHasher creates a hasher, clamping cost into bcrypt's accepted range
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash hashes a password using bcrypt
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash.
// A mismatch is (false, nil); an unreadable hash is ErrCorruptCredential.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptCredential
}
