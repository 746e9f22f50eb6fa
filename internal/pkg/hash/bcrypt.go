package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBcryptInputBytes is the longest input bcrypt accepts. The pepper counts
// toward it.
const MaxBcryptInputBytes = 72

// Bcrypt implements Hash using bcrypt.
//
// Pepper is appended to the plaintext before hashing/verifying. Keep the pepper
// secret and store it in configuration (not in the database).
type Bcrypt struct {
	cost   int
	pepper string
}

// NewBcrypt returns a bcrypt-based hasher.
//
// cost controls the hashing work factor; values below bcrypt.MinCost fall back
// to bcrypt.DefaultCost. pepper is optional but recommended as an extra secret.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost, pepper: pepper}
}

// Cost returns the work factor used for new hashes.
func (h *Bcrypt) Cost() int {
	return h.cost
}

// Hash hashes plaintext using bcrypt.
func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext+h.pepper), h.cost)
}

// Verify returns true when plaintext matches the hashed value.
func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	ok, _ := h.Check(hashed, plaintext)
	return ok
}

// Check compares plaintext with hashed. It returns ErrMalformedHash when hashed
// is not a bcrypt hash.
func (h *Bcrypt) Check(hashed, plaintext string) (bool, error) {
	if hashed == "" {
		return false, ErrMalformedHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+h.pepper))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// Cheapest returns a bcrypt hasher at bcrypt.MinCost with the same pepper.
func (h *Bcrypt) Cheapest() Hash {
	return &Bcrypt{cost: bcrypt.MinCost, pepper: h.pepper}
}

// MaxInput returns what is left of MaxBcryptInputBytes after the pepper. It
// is zero or negative when the pepper alone fills the limit.
func (h *Bcrypt) MaxInput() int {
	return MaxBcryptInputBytes - len(h.pepper)
}

// NeedsRehash reports whether hashed was produced with a different cost.
func (h *Bcrypt) NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return true
	}
	return cost != h.cost
}
