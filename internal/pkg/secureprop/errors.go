package secureprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrNoDigest is returned by Field.Compare when no digest has been set.
	ErrNoDigest = errors.New("secureprop: digest is not set")

	// ErrUnknownProperty is returned when a record has no field with the given name.
	ErrUnknownProperty = errors.New("secureprop: unknown property")
)

// Kind is the symbolic reason a secret failed validation.
type Kind string

const (
	// KindBlank means the plaintext is empty or whitespace.
	KindBlank Kind = "blank"
	// KindTooLong means the plaintext exceeds the maximum length.
	KindTooLong Kind = "too_long"
	// KindConfirmation means the confirmation differs from the plaintext.
	KindConfirmation Kind = "confirmation"
)

// Error is a single validation failure attached to a field name.
type Error struct {
	// Field is the user-facing attribute, e.g. "password" or
	// "password_confirmation".
	Field string
	// Kind classifies the failure.
	Kind Kind
	// Count is the limit for KindTooLong.
	Count int
	// Attribute is the property compared against for KindConfirmation.
	Attribute string
}

// Message returns the failure without the field name.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBlank:
		return "can't be blank"
	case KindTooLong:
		return fmt.Sprintf("is too long (maximum is %d characters)", e.Count)
	case KindConfirmation:
		return "doesn't match " + humanize(e.Attribute)
	default:
		return "is invalid"
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return humanize(e.Field) + " " + e.Message()
}

// Errors accumulates validation failures. A nil or empty Errors means valid.
type Errors []*Error

// Error implements the error interface.
func (es Errors) Error() string {
	return strings.Join(lo.Map(es, func(e *Error, _ int) string { return e.Error() }), "; ")
}

// On returns the failures attached to field.
func (es Errors) On(field string) Errors {
	return lo.Filter(es, func(e *Error, _ int) bool { return e.Field == field })
}

// Has reports whether field failed with kind.
func (es Errors) Has(field string, kind Kind) bool {
	return lo.ContainsBy(es, func(e *Error) bool { return e.Field == field && e.Kind == kind })
}

// Fields flattens the failures into the field-to-message map used by goerror
// and the HTTP error envelope. Messages on the same field are joined.
func (es Errors) Fields() map[string]string {
	grouped := lo.GroupBy([]*Error(es), func(e *Error) string { return e.Field })
	return lo.MapValues(grouped, func(group []*Error, _ string) string {
		return strings.Join(lo.Map(group, func(e *Error, _ int) string { return e.Message() }), ", ")
	})
}

func humanize(field string) string {
	s := strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
