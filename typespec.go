// File: tyconf/typespec.go
package tyconf

import (
	"reflect"
	"strings"
)

// specKind identifies the variant of a type specification.
type specKind int

const (
	specInvalid specKind = iota
	specString
	specInt
	specFloat
	specBool
	specNil
	specOpaque
	specList
	specMap
	specTuple
	specSet
	specUnion
)

// Spec is a declared type expression for a property value. A Spec is either
// a primitive (String, Int, Float, Bool, or an opaque type from TypeOf), a
// generic container (List, Map, Tuple, Set), or a Union of member specs.
// Optional(T) is shorthand for Union(T, Nil).
//
// Container element specs are informational only: the matcher checks the
// container kind, never the elements, so List(String) accepts a slice
// holding non-string values. This leniency is deliberate.
type Spec struct {
	kind  specKind
	prim  reflect.Type // set for specOpaque only
	elems []Spec       // container element specs or union members
}

// Primitive type specifications.
var (
	// String matches any value of string kind, including named string types.
	String = Spec{kind: specString}

	// Int matches any signed or unsigned integer kind. Boolean values are
	// never accepted, even for named types whose underlying kind is bool.
	Int = Spec{kind: specInt}

	// Float matches float32 and float64 kinds. Integers are not accepted.
	Float = Spec{kind: specFloat}

	// Bool matches only boolean kinds.
	Bool = Spec{kind: specBool}

	// Nil matches only the absence-value (nil, or a nil pointer/func/chan).
	// Useful as a Union member; Optional(T) is the common shorthand.
	Nil = Spec{kind: specNil}
)

// TypeOf builds a specification matching the exact runtime type of sample,
// for property types outside the primitive set. A value matches when its
// type is identical or assignable to the sample's type.
func TypeOf(sample any) Spec {
	return Spec{kind: specOpaque, prim: reflect.TypeOf(sample)}
}

// List specifies an ordered sequence (any slice type). Element specs are
// recorded for display only and are not validated.
func List(elems ...Spec) Spec {
	return Spec{kind: specList, elems: elems}
}

// Map specifies a mapping (any map type except set-shaped maps, see Set).
// Key/value specs are recorded for display only and are not validated.
func Map(elems ...Spec) Spec {
	return Spec{kind: specMap, elems: elems}
}

// Tuple specifies a fixed-size sequence (any array type). Element specs are
// recorded for display only and are not validated.
func Tuple(elems ...Spec) Spec {
	return Spec{kind: specTuple, elems: elems}
}

// Set specifies a set, represented in Go as a map with struct{} values.
// The element spec is recorded for display only and is not validated.
func Set(elems ...Spec) Spec {
	return Spec{kind: specSet, elems: elems}
}

// Union specifies that a value must match at least one member. Members are
// tried left to right and matching short-circuits on the first success.
// A Union containing Nil also accepts the absence-value.
func Union(members ...Spec) Spec {
	return Spec{kind: specUnion, elems: members}
}

// Optional specifies that a value must match inner or be the absence-value.
// Equivalent to Union(inner, Nil).
func Optional(inner Spec) Spec {
	return Union(inner, Nil)
}

var emptyStructType = reflect.TypeOf(struct{}{})

// Matches reports whether value conforms to the specification. It has no
// side effects and terminates for any spec the constructors can build.
func (s Spec) Matches(value any) bool {
	switch s.kind {
	case specNil:
		return isAbsent(value)
	case specUnion:
		for _, m := range s.elems {
			if m.Matches(value) {
				return true
			}
		}
		return false
	}

	if value == nil {
		return false
	}
	rt := reflect.TypeOf(value)

	switch s.kind {
	case specString:
		return rt.Kind() == reflect.String
	case specInt:
		switch rt.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		case reflect.Bool:
			// bool is never an integer, regardless of host conventions
			return false
		}
		return false
	case specFloat:
		return rt.Kind() == reflect.Float32 || rt.Kind() == reflect.Float64
	case specBool:
		return rt.Kind() == reflect.Bool
	case specOpaque:
		if s.prim == nil {
			return false
		}
		return rt == s.prim || rt.AssignableTo(s.prim)
	case specList:
		return rt.Kind() == reflect.Slice
	case specTuple:
		return rt.Kind() == reflect.Array
	case specSet:
		return rt.Kind() == reflect.Map && rt.Elem() == emptyStructType
	case specMap:
		return rt.Kind() == reflect.Map && rt.Elem() != emptyStructType
	}

	return false
}

// valid reports whether the spec was built by one of the constructors.
// The zero Spec matches nothing and is rejected at property definition.
func (s Spec) valid() bool {
	if s.kind == specInvalid {
		return false
	}
	if s.kind == specOpaque && s.prim == nil {
		return false
	}
	if s.kind == specUnion {
		if len(s.elems) == 0 {
			return false
		}
		for _, m := range s.elems {
			if !m.valid() {
				return false
			}
		}
	}
	return true
}

// Describe returns a stable, human-readable name for the specification,
// e.g. "int", "list[string]", "string | nil".
func (s Spec) Describe() string {
	switch s.kind {
	case specString:
		return "string"
	case specInt:
		return "int"
	case specFloat:
		return "float"
	case specBool:
		return "bool"
	case specNil:
		return "nil"
	case specOpaque:
		if s.prim == nil {
			return "invalid"
		}
		return s.prim.String()
	case specList, specMap, specTuple, specSet:
		base := s.baseName()
		if len(s.elems) == 0 {
			return base
		}
		parts := make([]string, len(s.elems))
		for i, e := range s.elems {
			parts[i] = e.Describe()
		}
		return base + "[" + strings.Join(parts, ", ") + "]"
	case specUnion:
		parts := make([]string, len(s.elems))
		for i, m := range s.elems {
			parts[i] = m.Describe()
		}
		return strings.Join(parts, " | ")
	}
	return "invalid"
}

// baseName returns the container or primitive name without element
// parameters. Used by the metadata export format.
func (s Spec) baseName() string {
	switch s.kind {
	case specList:
		return "list"
	case specMap:
		return "map"
	case specTuple:
		return "tuple"
	case specSet:
		return "set"
	default:
		return s.Describe()
	}
}

// isAbsent reports whether value is the absence-value: untyped nil or a nil
// pointer, interface, func or channel. Nil slices and maps are not absent;
// they still match their container specs.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// runtimeTypeName names the dynamic type of value for error messages.
func runtimeTypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
