// File: tyconf/descriptor.go
package tyconf

import (
	"fmt"
	"strings"
)

// Validator checks a candidate value for a property. A nil return accepts
// the value; a non-nil return rejects it and the error text is surfaced
// verbatim as the rejection reason. Returning the bare ErrValidation
// sentinel rejects with a generic message.
//
// Validators are plain function values and are never serialized: exporting a
// Config drops them, and they are not restored on reload.
type Validator func(value any) error

// Property is the immutable descriptor for one declared configuration
// property: its name, type specification, default value, and either a
// read-only flag or a validator (never both). Build one with Define and
// hand it to New, or use Config.Add directly.
type Property struct {
	name     string
	spec     Spec
	def      any
	readonly bool
	check    Validator
	err      error // deferred construction error, surfaced by New/Add
}

// Option configures a property definition.
type Option func(*defineOptions)

type defineOptions struct {
	readonly  bool
	validator Validator
}

// ReadOnly marks the property immutable after declaration. Mutually
// exclusive with WithValidator.
func ReadOnly() Option {
	return func(o *defineOptions) { o.readonly = true }
}

// WithValidator attaches a validator invoked on every assignment, including
// the default value at definition time. Mutually exclusive with ReadOnly.
func WithValidator(v Validator) Option {
	return func(o *defineOptions) { o.validator = v }
}

// Define builds a property descriptor. Any construction problem (empty or
// reserved name, invalid spec, read-only combined with a validator, default
// failing the type or validator check) is carried inside the returned
// Property and reported by New or Config.Add, so batch declarations stay
// atomic.
//
// The default value is deep-copied: later mutation of a container passed as
// the default is not observable through the descriptor.
func Define(name string, spec Spec, defaultValue any, opts ...Option) Property {
	var o defineOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := Property{
		name:     name,
		spec:     spec,
		readonly: o.readonly,
		check:    o.validator,
	}

	if strings.TrimSpace(name) == "" {
		p.err = fmt.Errorf("%w: property name cannot be empty", ErrConstruction)
		return p
	}
	if strings.HasPrefix(name, "_") {
		p.err = fmt.Errorf("%w: name %q is reserved, leading underscore names are for internal use", ErrConstruction, name)
		return p
	}
	if !spec.valid() {
		p.err = fmt.Errorf("%w: property %q: missing or invalid type specification", ErrConstruction, name)
		return p
	}
	if o.readonly && o.validator != nil {
		p.err = fmt.Errorf("%w: property %q: read-only properties cannot carry a validator", ErrConstruction, name)
		return p
	}
	if !spec.Matches(defaultValue) {
		p.err = fmt.Errorf("%w: default value: %w", ErrConstruction, typeMismatch(name, spec, defaultValue))
		return p
	}
	if o.validator != nil {
		if err := o.validator(defaultValue); err != nil {
			p.err = fmt.Errorf("%w: property %q: default value rejected: %s", ErrConstruction, name, reasonOf(err))
			return p
		}
	}

	p.def = cloneValue(defaultValue)
	return p
}

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Type returns the declared type specification.
func (p Property) Type() Spec { return p.spec }

// Default returns a deep copy of the declared default value.
func (p Property) Default() any { return cloneValue(p.def) }

// IsReadOnly reports whether the property rejects mutation.
func (p Property) IsReadOnly() bool { return p.readonly }

// Validator returns the attached validator, or nil.
func (p Property) Validator() Validator { return p.check }

// reasonOf extracts the human-readable rejection reason from a validator
// error. The bare sentinel maps to a generic message.
func reasonOf(err error) string {
	if err == ErrValidation {
		return "validation failed"
	}
	return err.Error()
}

// validate runs the property's validator against value and converts a
// rejection into a ValidationError carrying the property name.
func (p Property) validate(value any) error {
	if p.check == nil {
		return nil
	}
	if err := p.check(value); err != nil {
		return &ValidationError{Property: p.name, Reason: reasonOf(err)}
	}
	return nil
}
