package validator

// Validator validates request and domain structs.
type Validator interface {
	// Validate checks data against its `validate` struct tags. On failure it
	// returns a V10ValidationError keyed by snake_case field name.
	Validate(data any) error
}

// FieldViolation describes the rule a single value failed.
type FieldViolation struct {
	// Tag is the failing rule, e.g. "required" or "maxbytes".
	Tag string
	// Param is the rule parameter, e.g. "72" for maxbytes=72.
	Param string
}
