package hash

import "errors"

// ErrMalformedHash indicates the stored hash cannot be parsed by the hasher.
var ErrMalformedHash = errors.New("hash: malformed hashed value")

// NoInputLimit is returned by MaxInput when any plaintext length is accepted.
const NoInputLimit = -1

// Hash hashes secrets and verifies plaintext against stored hashes.
type Hash interface {
	// Hash returns the encoded, salted hash of plaintext.
	Hash(plaintext string) ([]byte, error)

	// Verify reports whether plaintext matches hashed. Malformed or empty
	// hashes never match.
	Verify(hashed, plaintext string) bool

	// Check is Verify for callers that need to tell a mismatch apart from a
	// hash that could not be parsed. A mismatch returns (false, nil).
	Check(hashed, plaintext string) (bool, error)
}

// Tunable is implemented by hashers with an adjustable work factor.
type Tunable interface {
	Hash

	// Cheapest returns a copy of the hasher running at the algorithm's
	// minimum work factor. Only meant for tests.
	Cheapest() Hash

	// NeedsRehash reports whether hashed was produced with parameters
	// different from the hasher's current ones.
	NeedsRehash(hashed string) bool

	// MaxInput returns the longest plaintext in bytes the hasher accepts,
	// or NoInputLimit.
	MaxInput() int
}
