package secureprop

import (
	"github.com/samber/lo"
)

// Props groups the secret fields of one record by property name. The zero
// value is ready to use; embed it in the record struct.
type Props struct {
	fields map[string]*Field
	order  []string
}

// Attach adds fields to the record, replacing any field with the same name.
func (p *Props) Attach(fields ...*Field) {
	if p.fields == nil {
		p.fields = make(map[string]*Field, len(fields))
	}
	for _, f := range fields {
		if f == nil {
			continue
		}
		if _, exists := p.fields[f.Name()]; !exists {
			p.order = append(p.order, f.Name())
		}
		p.fields[f.Name()] = f
	}
}

// Field returns the field attached under name.
func (p *Props) Field(name string) (*Field, bool) {
	f, ok := p.fields[name]
	return f, ok
}

// Names lists attached property names in attach order.
func (p *Props) Names() []string {
	return append([]string(nil), p.order...)
}

// Dirty reports whether any attached digest changed.
func (p *Props) Dirty() bool {
	return lo.SomeBy(p.order, func(name string) bool { return p.fields[name].Dirty() })
}

// Validate runs every field's rules and returns nil or Errors.
func (p *Props) Validate() error {
	errs := lo.FlatMap(p.order, func(name string, _ int) []*Error {
		return p.fields[name].Validate()
	})
	if len(errs) == 0 {
		return nil
	}
	return Errors(errs)
}

// Authenticate verifies candidate against the named field. Unknown names fail.
func (p *Props) Authenticate(name, candidate string) bool {
	f, ok := p.fields[name]
	return ok && f.Verify(candidate)
}

// Compare is Field.Compare for the named field. It returns ErrUnknownProperty
// when nothing is attached under name.
func (p *Props) Compare(name, candidate string) (bool, error) {
	f, ok := p.fields[name]
	if !ok {
		return false, ErrUnknownProperty
	}
	return f.Compare(candidate)
}
