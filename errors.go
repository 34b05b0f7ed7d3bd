// File: tyconf/errors.go
package tyconf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds a Config can produce. Every error
// returned by this package wraps exactly one of these, so callers can branch
// with errors.Is without parsing messages.
var (
	// ErrConstruction reports a malformed property definition: reserved or
	// empty name, conflicting read-only flag and validator, or a default
	// value that fails its own type or validator check.
	ErrConstruction = errors.New("invalid property definition")

	// ErrTypeMismatch reports a value that does not satisfy the declared
	// type specification.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidation reports a value rejected by a property validator.
	ErrValidation = errors.New("validation failed")

	// ErrReadOnly reports an attempted mutation of a read-only property.
	ErrReadOnly = errors.New("property is read-only")

	// ErrFrozen reports an attempted mutation of a frozen Config.
	ErrFrozen = errors.New("config is frozen")

	// ErrNotFound reports access to a property name that is not declared.
	ErrNotFound = errors.New("property not found")

	// ErrDuplicate reports an Add with a name that already exists.
	ErrDuplicate = errors.New("property already exists")

	// ErrFileNotFound reports a missing configuration file. Loaders treat
	// it as non-fatal so applications can fall back to declared defaults.
	ErrFileNotFound = errors.New("config file not found")
)

// TypeMismatchError carries the context of a failed type check.
type TypeMismatchError struct {
	Property string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("property %q: expected %s, got %s", e.Property, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ValidationError carries the reason a validator rejected a value. The
// reason string is taken verbatim from the validator's error.
type ValidationError struct {
	Property string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("property %q: %s", e.Property, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// typeMismatch builds a TypeMismatchError for value against spec.
func typeMismatch(name string, spec Spec, value any) *TypeMismatchError {
	return &TypeMismatchError{
		Property: name,
		Expected: spec.Describe(),
		Actual:   runtimeTypeName(value),
	}
}
