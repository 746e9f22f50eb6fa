package secureprop

import (
	"fmt"
	"strings"

	"github.com/shandysiswandi/secureprop/internal/pkg/hash"
)

// Field is the secret state of one record instance.
//
// plaintext and confirmation live in memory for a single assign-and-validate
// cycle and are never persisted; digest is what the record stores. A Field is
// not safe for concurrent use.
type Field struct {
	def          *Definition
	plaintext    *string
	confirmation *string
	digest       *string
	dirty        bool
}

// Name returns the property name.
func (f *Field) Name() string {
	return f.def.name
}

// Definition returns the definition the field was created from.
func (f *Field) Definition() *Definition {
	return f.def
}

// Plaintext returns the last non-empty value assigned, or "" when unset.
func (f *Field) Plaintext() string {
	if f.plaintext == nil {
		return ""
	}
	return *f.plaintext
}

// Confirmation returns the confirmation value and whether one was assigned.
func (f *Field) Confirmation() (string, bool) {
	if f.confirmation == nil {
		return "", false
	}
	return *f.confirmation, true
}

// Digest returns a copy of the stored digest, nil when unset.
func (f *Field) Digest() *string {
	if f.digest == nil {
		return nil
	}
	v := *f.digest
	return &v
}

// HasDigest reports whether the field is in the set state.
func (f *Field) HasDigest() bool {
	return f.digest != nil
}

// Dirty reports whether the digest changed since the field was created or
// loaded, or since the last MarkPersisted.
func (f *Field) Dirty() bool {
	return f.dirty
}

// MarkPersisted clears the dirty flag once the digest has been stored.
func (f *Field) MarkPersisted() {
	f.dirty = false
}

// SetPlaintext assigns a new secret.
//
//   - nil clears the digest and leaves the in-memory plaintext untouched.
//   - "" is a no-op.
//   - anything else is kept in memory and hashed into the digest.
//
// When hashing fails (bcrypt refuses inputs over 72 bytes) the plaintext is
// still kept so Validate can report it, and the previous digest survives.
func (f *Field) SetPlaintext(value *string) error {
	if value == nil {
		if f.digest != nil {
			f.digest = nil
			f.dirty = true
		}
		return nil
	}

	if *value == "" {
		return nil
	}

	v := *value
	f.plaintext = &v

	digest, err := f.def.hash(v)
	if err != nil {
		return fmt.Errorf("secureprop: hash %s: %w", f.def.name, err)
	}

	d := string(digest)
	f.digest = &d
	f.dirty = true

	return nil
}

// Set is SetPlaintext for a plain string.
func (f *Field) Set(value string) error {
	return f.SetPlaintext(&value)
}

// Clear is SetPlaintext(nil).
func (f *Field) Clear() {
	//nolint:errcheck // a nil assignment never hashes
	f.SetPlaintext(nil)
}

// SetConfirmation stores value verbatim. nil withdraws the confirmation so the
// match rule is skipped.
func (f *Field) SetConfirmation(value *string) {
	if value == nil {
		f.confirmation = nil
		return
	}
	v := *value
	f.confirmation = &v
}

// Reset drops the transient plaintext and confirmation. The digest is kept.
func (f *Field) Reset() {
	f.plaintext = nil
	f.confirmation = nil
}

// Verify reports whether candidate matches the digest. An unset or malformed
// digest never matches.
func (f *Field) Verify(candidate string) bool {
	ok, _ := f.Compare(candidate)
	return ok
}

// Compare is Verify for callers that want to fail fast on a missing
// (ErrNoDigest) or corrupt (hash.ErrMalformedHash) digest.
func (f *Field) Compare(candidate string) (bool, error) {
	if f.digest == nil || *f.digest == "" {
		return false, ErrNoDigest
	}
	return f.def.hasher.Check(*f.digest, candidate)
}

// NeedsRehash reports whether the digest was produced with parameters other
// than the definition's, so it should be recomputed on the next successful
// login. Hashers that are not tunable never ask for a rehash.
func (f *Field) NeedsRehash() bool {
	if f.digest == nil {
		return false
	}
	t, ok := f.def.hasher.(hash.Tunable)
	if !ok {
		return false
	}
	return t.NeedsRehash(*f.digest)
}

// Validate runs the declarative rules and returns every failure. It returns
// nil when validations are disabled.
func (f *Field) Validate() Errors {
	if !f.def.validations {
		return nil
	}

	var errs Errors
	plaintext := f.Plaintext()

	if f.def.violates(strings.TrimSpace(plaintext), "required") {
		errs = append(errs, &Error{Field: f.def.name, Kind: KindBlank})
	}

	if f.def.violates(plaintext, f.def.maxBytesTag()) {
		errs = append(errs, &Error{Field: f.def.name, Kind: KindTooLong, Count: f.def.maxLength})
	}

	if c, ok := f.Confirmation(); ok && strings.TrimSpace(c) != "" {
		if f.def.violatesWith(c, plaintext, "eqfield") {
			errs = append(errs, &Error{
				Field:     f.def.ConfirmationName(),
				Kind:      KindConfirmation,
				Attribute: f.def.name,
			})
		}
	}

	return errs
}

// Authenticate returns record when candidate matches f, so calls can be
// chained, and the zero value with false otherwise.
func Authenticate[R any](record R, f *Field, candidate string) (R, bool) {
	if f != nil && f.Verify(candidate) {
		return record, true
	}

	var zero R
	return zero, false
}
