// File: tyconf/serialize.go
package tyconf

import (
	"fmt"
	"math"
	"sort"
)

// Version is recorded in metadata exports so loaders can detect the format.
const Version = "1.2.0"

// versionKey marks the full-metadata map format. A map carrying both this
// key and a "properties" table is treated as metadata; anything else is a
// plain values-only map.
const (
	versionKey    = "_tyconf_version"
	propertiesKey = "properties"
)

// ValuesMap exports the current values as a plain name-to-value map. The
// result is a deep-copied snapshot; mutating it does not touch the Config.
func (c *Config) ValuesMap() map[string]any {
	out := make(map[string]any, len(c.values))
	for name, v := range c.values {
		out[name] = cloneValue(v)
	}
	return out
}

// Export renders the full-metadata map format: per property the declared
// type name, current value, original default and read-only flag. Validators
// are not serializable and are deliberately dropped; a reloaded Config does
// not restore them.
func (c *Config) Export() map[string]any {
	props := make(map[string]any, len(c.props))
	for name, p := range c.props {
		props[name] = map[string]any{
			"type":     p.spec.baseName(),
			"value":    cloneValue(c.values[name]),
			"default":  cloneValue(p.def),
			"readonly": p.readonly,
		}
	}
	return map[string]any{
		versionKey:    Version,
		propertiesKey: props,
	}
}

// FromMap builds a Config from a map in either supported format. A
// full-metadata map (produced by Export) needs no schema. A values-only map
// requires a schema: the property definitions to declare, whose declared
// types also drive coercion of loosely-typed decoder output (JSON numbers
// arrive as float64).
func FromMap(data map[string]any, schema ...Property) (*Config, error) {
	if isMetadataMap(data) {
		return fromMetadata(data)
	}
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: schema required when loading a values-only map", ErrConstruction)
	}
	return fromValues(data, schema)
}

func isMetadataMap(data map[string]any) bool {
	if _, ok := data[versionKey]; !ok {
		return false
	}
	_, ok := data[propertiesKey].(map[string]any)
	return ok
}

// fromMetadata restores a Config exported with Export. Current values are
// installed directly after a type check, bypassing read-only flags: a
// restored read-only property keeps the value it was exported with.
func fromMetadata(data map[string]any) (*Config, error) {
	props, _ := data[propertiesKey].(map[string]any)

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	c, err := New()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		info, ok := props[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: property %q: malformed metadata entry", ErrConstruction, name)
		}
		typeName, _ := info["type"].(string)
		spec, err := resolveTypeName(typeName)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}

		var opts []Option
		if ro, _ := info["readonly"].(bool); ro {
			opts = append(opts, ReadOnly())
		}
		def := coerce(spec, info["default"])
		if err := c.Add(name, spec, def, opts...); err != nil {
			return nil, err
		}

		value := coerce(spec, info["value"])
		if !spec.Matches(value) {
			return nil, typeMismatch(name, spec, value)
		}
		c.values[name] = value
	}
	return c, nil
}

// fromValues declares the schema, then installs values present in data
// after type and validator checks. Read-only flags do not block the import,
// so a values-only export reloads under the schema that produced it. Names
// in data without a schema entry are ignored; schema entries without data
// keep their defaults.
func fromValues(data map[string]any, schema []Property) (*Config, error) {
	c, err := New(schema...)
	if err != nil {
		return nil, err
	}
	for _, name := range c.Keys() {
		raw, ok := data[name]
		if !ok {
			continue
		}
		p := c.props[name]
		value := coerce(p.spec, raw)
		if !p.spec.Matches(value) {
			return nil, typeMismatch(name, p.spec, value)
		}
		if err := p.validate(value); err != nil {
			return nil, err
		}
		c.values[name] = value
	}
	return c, nil
}

// Merge applies a values-only map onto an existing Config through the
// normal Set validation chain. Names not declared on the Config are
// ignored. All-or-nothing like Update.
func (c *Config) Merge(data map[string]any) error {
	entries := make(map[string]any, len(data))
	for name, raw := range data {
		p, ok := c.props[name]
		if !ok {
			continue
		}
		entries[name] = coerce(p.spec, raw)
	}
	return c.Update(entries)
}

// resolveTypeName maps an exported type name back to a specification.
// Union and Optional specs are not representable in the metadata format;
// export writes their description, which fails resolution here.
func resolveTypeName(name string) (Spec, error) {
	switch name {
	case "string":
		return String, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "bool":
		return Bool, nil
	case "list":
		return List(), nil
	case "map":
		return Map(), nil
	case "tuple":
		return Tuple(), nil
	case "set":
		return Set(), nil
	}
	return Spec{}, fmt.Errorf("%w: unknown type name %q", ErrConstruction, name)
}

// coerce normalizes decoder output toward the declared spec before the type
// check runs. JSON decodes every number as float64; an integral float64 is
// narrowed for Int specs and integers are widened for Float specs. The core
// Set path stays strict; coercion happens only at the import boundary.
func coerce(spec Spec, value any) any {
	switch spec.kind {
	case specInt:
		if f, ok := value.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	case specFloat:
		switch v := value.(type) {
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case uint64:
			return float64(v)
		}
	case specUnion:
		for _, m := range spec.elems {
			if m.Matches(value) {
				return value
			}
		}
		for _, m := range spec.elems {
			if coerced := coerce(m, value); m.Matches(coerced) {
				return coerced
			}
		}
	}
	return value
}
