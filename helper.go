// File: tyconf/helper.go
package tyconf

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// cloneValue returns a deep copy of v for slice, map and array values so a
// stored default or copied Config never aliases caller-owned containers.
// Scalars and other kinds are returned as-is.
func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	return cloneReflect(reflect.ValueOf(v)).Interface()
}

func cloneReflect(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value()))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}
		return out
	default:
		return rv
	}
}

// cloneElem unwraps interface elements so nested containers are copied too.
func cloneElem(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		inner := cloneReflect(rv.Elem())
		out := reflect.New(rv.Type()).Elem()
		out.Set(inner)
		return out
	}
	return cloneReflect(rv)
}

// Display formatting limits, matching the diagnostic rendering contract.
const (
	maxDisplayString    = 50
	maxDisplayItems     = 5
	displayNameColWidth = 16
	displayValColWidth  = 14
)

// formatValue renders a value for the diagnostic display. Long strings are
// truncated and large collections elided so the table stays readable.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		if len(val) > maxDisplayString {
			return fmt.Sprintf("%q", val[:maxDisplayString-3]+"...")
		}
		return fmt.Sprintf("%q", val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		shown := n
		if shown > maxDisplayItems {
			shown = maxDisplayItems
		}
		parts := make([]string, 0, shown)
		for i := 0; i < shown; i++ {
			parts = append(parts, formatItem(rv.Index(i).Interface()))
		}
		if n > maxDisplayItems {
			parts = append(parts, "...")
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if rv.Len() > maxDisplayItems {
			return "{...}"
		}
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprintf("%v", iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = formatItem(iter.Value().Interface())
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+byKey[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprintf("%v", v)
}

func formatItem(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
