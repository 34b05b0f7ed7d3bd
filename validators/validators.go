// File: tyconf/validators/validators.go

// Package validators provides ready-made value validators for tyconf
// properties, plus the All and Any combinators for composing them. Every
// constructor returns a tyconf.Validator: a function that returns nil to
// accept a value and a descriptive error to reject it.
package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/barabasz/tyconf"
)

// All combines validators so that every one must pass. Sub-validators run
// in order and the first failure is reported.
func All(vs ...tyconf.Validator) tyconf.Validator {
	return func(value any) error {
		for _, v := range vs {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any combines validators so that at least one must pass. When all fail,
// the rejection reports that none passed, with the individual reasons
// joined, rather than any single sub-validator's message.
func Any(vs ...tyconf.Validator) tyconf.Validator {
	return func(value any) error {
		reasons := make([]string, 0, len(vs))
		for _, v := range vs {
			err := v(value)
			if err == nil {
				return nil
			}
			reasons = append(reasons, err.Error())
		}
		return fmt.Errorf("must satisfy at least one of: %s", strings.Join(reasons, "; "))
	}
}

// OneOf accepts only values present in the allowed set. Comparison uses the
// language equality rules, so allowed values should be comparable scalars.
func OneOf(allowed ...any) tyconf.Validator {
	return func(value any) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", allowed)
	}
}

// NotIn rejects values present in the disallowed set.
func NotIn(disallowed ...any) tyconf.Validator {
	return func(value any) error {
		for _, d := range disallowed {
			if value == d {
				return fmt.Errorf("must not be one of %v", disallowed)
			}
		}
		return nil
	}
}

// asNumber widens any numeric runtime value to float64. Non-numeric values
// are rejected; the store's type check normally runs first, so this only
// fires for loosely-typed union properties.
func asNumber(value any) (float64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("not a number: %v (%T)", value, value)
}

// asInteger narrows any integer runtime value to int64.
func asInteger(value any) (int64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("not an integer: %v (%T)", value, value)
}

// lengthOf measures strings, slices, arrays and maps.
func lengthOf(value any) (int, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("value %v (%T) has no length", value, value)
}

// asString extracts a string value.
func asString(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("not a string: %v (%T)", value, value)
}
