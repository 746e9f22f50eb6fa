package secureprop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shandysiswandi/secureprop/internal/pkg/hash"
	"github.com/shandysiswandi/secureprop/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MaxLength is the longest plaintext, in bytes, accepted by validation. It
// matches the bcrypt input limit. Define lowers it further when the hasher
// reports a smaller usable input, e.g. bcrypt with a pepper.
const MaxLength = hash.MaxBcryptInputBytes

// DigestSuffix is appended to the property name to form the persisted column.
const DigestSuffix = "_digest"

// ConfirmationSuffix is appended to the property name to form the
// confirmation attribute that mismatches are reported on.
const ConfirmationSuffix = "_confirmation"

type checker interface {
	Var(value any, tag string) (*validator.FieldViolation, error)
	VarWithValue(value, other any, tag string) (*validator.FieldViolation, error)
}

type inputBounded interface {
	MaxInput() int
}

type options struct {
	validations bool
	minCost     bool
	maxLength   int
	checker     checker
	meter       metric.Meter
}

// Option customizes a Definition.
type Option func(*options)

// WithValidations toggles the presence, length and confirmation rules.
// They are on by default.
func WithValidations(enabled bool) Option {
	return func(o *options) { o.validations = enabled }
}

// WithMinCost makes the definition hash at the hasher's cheapest work factor.
// Use it in test environments only.
func WithMinCost(enabled bool) Option {
	return func(o *options) { o.minCost = enabled }
}

// WithMaxLength overrides MaxLength. Values outside 1..MaxLength are ignored.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n > 0 && n <= MaxLength {
			o.maxLength = n
		}
	}
}

// WithValidator shares an existing validator instead of building one.
func WithValidator(v *validator.V10Validator) Option {
	return func(o *options) {
		if v != nil {
			o.checker = v
		}
	}
}

// WithMeter records hashing latency on m.
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// Definition binds a property name to a hasher and its validation rules. It
// is immutable and safe to share between goroutines; each record instance gets
// its own Field from New or Load.
type Definition struct {
	name        string
	hasher      hash.Hash
	validations bool
	maxLength   int
	checker     checker
	duration    metric.Float64Histogram
	attrs       metric.MeasurementOption

	dummyOnce   sync.Once
	dummyDigest string
}

// Define attaches secret handling to the property name.
func Define(name string, hasher hash.Hash, opts ...Option) (*Definition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("secureprop: property name is required")
	}
	if hasher == nil {
		return nil, errors.New("secureprop: hasher is required")
	}

	o := &options{validations: true, maxLength: MaxLength}
	for _, opt := range opts {
		opt(o)
	}

	if b, ok := hasher.(inputBounded); ok {
		if limit := b.MaxInput(); limit != hash.NoInputLimit {
			if limit < 1 {
				return nil, errors.New("secureprop: hasher pepper leaves no room for the secret")
			}
			o.maxLength = min(o.maxLength, limit)
		}
	}

	if o.minCost {
		if t, ok := hasher.(hash.Tunable); ok {
			hasher = t.Cheapest()
		} else {
			slog.Warn("secureprop: min cost requested but hasher is not tunable", "property", name)
		}
	}

	if o.validations && o.checker == nil {
		v, err := validator.NewV10Validator()
		if err != nil {
			return nil, fmt.Errorf("secureprop: init validator: %w", err)
		}
		o.checker = v
	}

	def := &Definition{
		name:        name,
		hasher:      hasher,
		validations: o.validations,
		maxLength:   o.maxLength,
		checker:     o.checker,
		attrs:       metric.WithAttributes(attribute.String("property", name)),
	}

	if o.meter != nil {
		h, err := o.meter.Float64Histogram(
			"secureprop.hash.duration",
			metric.WithDescription("Time spent hashing a secret property"),
			metric.WithUnit("s"),
		)
		if err != nil {
			return nil, fmt.Errorf("secureprop: init hash duration histogram: %w", err)
		}
		def.duration = h
	}

	return def, nil
}

// MustDefine is Define that panics on error, for package-level definitions.
func MustDefine(name string, hasher hash.Hash, opts ...Option) *Definition {
	def, err := Define(name, hasher, opts...)
	if err != nil {
		panic(err)
	}
	return def
}

// Name returns the property name, e.g. "password".
func (d *Definition) Name() string {
	return d.name
}

// DigestColumn returns the persisted attribute name, e.g. "password_digest".
func (d *Definition) DigestColumn() string {
	return d.name + DigestSuffix
}

// ConfirmationName returns the confirmation attribute, e.g. "password_confirmation".
func (d *Definition) ConfirmationName() string {
	return d.name + ConfirmationSuffix
}

// MaxLength returns the longest plaintext, in bytes, the too_long rule allows.
func (d *Definition) MaxLength() int {
	return d.maxLength
}

// Validations reports whether the declarative rules are installed.
func (d *Definition) Validations() bool {
	return d.validations
}

// New returns an empty field with no digest.
func (d *Definition) New() *Field {
	return &Field{def: d}
}

// Load returns a field hydrated from a persisted digest. A nil or empty digest
// yields a field in the unset state.
func (d *Definition) Load(digest *string) *Field {
	f := &Field{def: d}
	if digest != nil && *digest != "" {
		v := *digest
		f.digest = &v
	}
	return f
}

// CompareDummy checks candidate against a throwaway digest at the same cost
// as a real comparison and discards the result. Callers run it on branches that have no
// digest to compare (unknown account, cleared secret) so failures take as
// long as a wrong secret.
func (d *Definition) CompareDummy(candidate string) {
	d.dummyOnce.Do(func() {
		digest, err := d.hasher.Hash("-")
		if err != nil {
			slog.Error("secureprop: failed to hash dummy digest", "property", d.name, "error", err)
			return
		}
		d.dummyDigest = string(digest)
	})
	if d.dummyDigest == "" {
		return
	}
	_, _ = d.hasher.Check(d.dummyDigest, candidate)
}

func (d *Definition) hash(plaintext string) ([]byte, error) {
	if d.duration == nil {
		return d.hasher.Hash(plaintext)
	}

	start := time.Now()
	digest, err := d.hasher.Hash(plaintext)
	d.duration.Record(context.Background(), time.Since(start).Seconds(), d.attrs)
	return digest, err
}

func (d *Definition) violates(value any, tag string) bool {
	fv, err := d.checker.Var(value, tag)
	if err != nil {
		slog.Error("secureprop: validation rule failed to run", "property", d.name, "tag", tag, "error", err)
		return false
	}
	return fv != nil
}

func (d *Definition) violatesWith(value, other any, tag string) bool {
	fv, err := d.checker.VarWithValue(value, other, tag)
	if err != nil {
		slog.Error("secureprop: validation rule failed to run", "property", d.name, "tag", tag, "error", err)
		return false
	}
	return fv != nil
}

func (d *Definition) maxBytesTag() string {
	return "maxbytes=" + strconv.Itoa(d.maxLength)
}
