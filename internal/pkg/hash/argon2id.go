package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id implements the Hash interface using Argon2id.
//
// Hashes are encoded as $argon2id$v=19$m=<KiB>,t=<iter>,p=<par>$<salt>$<key>.
type Argon2id struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
	pepper      string
}

// NewArgon2id returns a Argon2id hasher with recommended defaults.
func NewArgon2id(pepper string) *Argon2id {
	return &Argon2id{
		memory:      32 * 1024, // e.g. 32MB, 64MB, 128MB
		iterations:  3,         // time cost
		parallelism: 2,         // threads
		saltLength:  16,
		keyLength:   32,
		pepper:      pepper,
	}
}

// Hash takes a plaintext string and returns its hashed representation.
func (a *Argon2id) Hash(str string) ([]byte, error) {
	salt := make([]byte, a.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(str+a.pepper), salt, a.iterations, a.memory, a.parallelism, a.keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.memory,
		a.iterations,
		a.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return []byte(encoded), nil
}

// Verify checks if the given plaintext string matches the hashed value.
func (a *Argon2id) Verify(hashed, str string) bool {
	ok, _ := a.Check(hashed, str)
	return ok
}

// Check compares str with hashed in constant time. Hashes that cannot be
// decoded yield ErrMalformedHash.
func (a *Argon2id) Check(hashed, str string) (bool, error) {
	p, err := decodeArgon2id(hashed)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(str+a.pepper), p.salt, p.iterations, p.memory, p.parallelism, uint32(len(p.key))) // #nosec G115 -- key length bounded by decode

	return subtle.ConstantTimeCompare(p.key, computed) == 1, nil
}

// Cheapest returns an Argon2id hasher with a single pass over the smallest
// memory block argon2 allows for the configured parallelism.
func (a *Argon2id) Cheapest() Hash {
	return &Argon2id{
		memory:      8 * uint32(a.parallelism),
		iterations:  1,
		parallelism: a.parallelism,
		saltLength:  a.saltLength,
		keyLength:   a.keyLength,
		pepper:      a.pepper,
	}
}

// MaxInput reports NoInputLimit; argon2 accepts inputs of any length.
func (a *Argon2id) MaxInput() int {
	return NoInputLimit
}

// NeedsRehash reports whether hashed uses parameters other than the current ones.
func (a *Argon2id) NeedsRehash(hashed string) bool {
	p, err := decodeArgon2id(hashed)
	if err != nil {
		return true
	}

	return p.memory != a.memory ||
		p.iterations != a.iterations ||
		p.parallelism != a.parallelism ||
		uint32(len(p.key)) != a.keyLength // #nosec G115 -- key length bounded by decode
}

type argon2idParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func decodeArgon2id(hashed string) (argon2idParams, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return argon2idParams{}, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return argon2idParams{}, ErrMalformedHash
	}

	var p argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return argon2idParams{}, ErrMalformedHash
	}
	if p.memory == 0 || p.iterations == 0 || p.parallelism == 0 {
		return argon2idParams{}, ErrMalformedHash
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return argon2idParams{}, ErrMalformedHash
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.key) == 0 || len(p.key) > 128 {
		return argon2idParams{}, ErrMalformedHash
	}

	return p, nil
}
