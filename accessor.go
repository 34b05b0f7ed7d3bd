// File: tyconf/accessor.go
package tyconf

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Typed accessors return the current value of a property converted to a
// concrete Go type. Conversion is a read-side convenience only; it never
// relaxes the write-side type specification.

// String retrieves a property value as a string. Attempts conversion from
// common types if the stored value isn't already a string.
func (c *Config) String(name string) (string, error) {
	val, err := c.Get(name)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil // treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case error:
		return v.Error(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}
	return "", fmt.Errorf("cannot convert type %T to string for property %s", val, name)
}

// Int64 retrieves a property value as an int64. Attempts conversion from
// numeric types, parsable strings, and booleans.
func (c *Config) Int64(name string) (int64, error) {
	val, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("value for property %s is nil, cannot convert to int64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for property %s: overflow", u, val, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil { // base 0 auto-detects "0xFF"
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
				return int64(f), nil // truncate
			}
			return 0, fmt.Errorf("cannot convert string %q to int64 for property %s: %w", s, name, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for property %s", val, name)
}

// Bool retrieves a property value as a bool. Attempts conversion from
// numeric types (0=false, non-zero=true) and parsable strings.
func (c *Config) Bool(name string) (bool, error) {
	val, err := c.Get(name)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, fmt.Errorf("value for property %s is nil, cannot convert to bool", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for property %s: %w", s, name, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for property %s", val, name)
}

// Float64 retrieves a property value as a float64. Attempts conversion from
// numeric types, parsable strings, and booleans.
func (c *Config) Float64(name string) (float64, error) {
	val, err := c.Get(name)
	if err != nil {
		return 0.0, err
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for property %s is nil, cannot convert to float64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for property %s: %w", s, name, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for property %s", val, name)
}

// Duration retrieves a property value as a time.Duration. Accepts a stored
// Duration, an integer nanosecond count, or a parsable string like "30s".
func (c *Config) Duration(name string) (time.Duration, error) {
	val, err := c.Get(name)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v), nil
	case int64:
		return time.Duration(v), nil
	case string:
		d, perr := time.ParseDuration(v)
		if perr != nil {
			return 0, fmt.Errorf("cannot convert string %q to duration for property %s: %w", v, name, perr)
		}
		return d, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to duration for property %s", val, name)
}

// StringSlice retrieves a property value as a []string. Accepts a stored
// []string or any slice whose elements are strings or fmt.Stringers.
func (c *Config) StringSlice(name string) ([]string, error) {
	val, err := c.Get(name)
	if err != nil {
		return nil, err
	}

	if s, ok := val.([]string); ok {
		return append([]string(nil), s...), nil
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert type %T to []string for property %s", val, name)
	}
	out := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		switch e := elem.(type) {
		case string:
			out[i] = e
		case fmt.Stringer:
			out[i] = e.String()
		default:
			return nil, fmt.Errorf("cannot convert element %d (%T) to string for property %s", i, elem, name)
		}
	}
	return out, nil
}
