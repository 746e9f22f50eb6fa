// Package uid generates identifiers for records and requests.
package uid

// NumberID generates numeric identifiers, used as primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers, used for correlation IDs.
type StringID interface {
	Generate() string
}
