// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is for password hashing: store only the hash, then verify user
// input by comparing the plaintext against the stored hash. Implementations
// (bcrypt and argon2id) live in this package behind the Hash interface, and
// both also satisfy Tunable so callers can drop to the cheapest work factor
// in tests.
package hash
