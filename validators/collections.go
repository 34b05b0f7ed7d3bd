// File: tyconf/validators/collections.go
package validators

import (
	"fmt"
	"reflect"

	"github.com/barabasz/tyconf"
)

// NonEmpty rejects empty strings and collections.
func NonEmpty() tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("must not be empty")
		}
		return nil
	}
}

// UniqueItems rejects slices and arrays containing duplicate elements.
// Elements must be comparable.
func UniqueItems() tyconf.Validator {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fmt.Errorf("not a sequence: %v (%T)", value, value)
		}
		seen := make(map[any]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			if item != nil && !reflect.ValueOf(item).Comparable() {
				return fmt.Errorf("items are not comparable: %T", item)
			}
			if _, dup := seen[item]; dup {
				return fmt.Errorf("all items must be unique")
			}
			seen[item] = struct{}{}
		}
		return nil
	}
}

// HasItems accepts sequences containing every required item.
func HasItems(required ...any) tyconf.Validator {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fmt.Errorf("not a sequence: %v (%T)", value, value)
		}
		present := make(map[any]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			if item != nil && !reflect.ValueOf(item).Comparable() {
				return fmt.Errorf("items are not comparable: %T", item)
			}
			present[item] = struct{}{}
		}
		var missing []any
		for _, item := range required {
			if _, ok := present[item]; !ok {
				missing = append(missing, item)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("must contain items: %v", missing)
		}
		return nil
	}
}

// MinItems accepts collections holding at least minCount items.
func MinItems(minCount int) tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n < minCount {
			return fmt.Errorf("must have at least %d items", minCount)
		}
		return nil
	}
}

// MaxItems accepts collections holding at most maxCount items.
func MaxItems(maxCount int) tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n > maxCount {
			return fmt.Errorf("must have at most %d items", maxCount)
		}
		return nil
	}
}

// HasKeys accepts maps containing every required key.
func HasKeys(required ...string) tyconf.Validator {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return fmt.Errorf("not a map: %v (%T)", value, value)
		}
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("map keys are not strings: %T", value)
		}
		var missing []string
		for _, key := range required {
			k := reflect.ValueOf(key).Convert(rv.Type().Key())
			if !rv.MapIndex(k).IsValid() {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("must contain keys: %v", missing)
		}
		return nil
	}
}

// KeysIn accepts maps whose keys are all in the allowed set.
func KeysIn(allowed ...string) tyconf.Validator {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = struct{}{}
	}
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return fmt.Errorf("not a map: %v (%T)", value, value)
		}
		var invalid []string
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprintf("%v", iter.Key().Interface())
			if _, ok := allowedSet[k]; !ok {
				invalid = append(invalid, k)
			}
		}
		if len(invalid) > 0 {
			return fmt.Errorf("invalid keys: %v", invalid)
		}
		return nil
	}
}
