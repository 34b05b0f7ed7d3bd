// File: tyconf/env.go
package tyconf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvTransformFunc converts a property name to an environment variable name.
type EnvTransformFunc func(name string) string

// DefaultEnvTransform returns the standard transformer: the name is
// uppercased, dots become underscores, and the prefix is prepended.
// "db.host" with prefix "APP_" becomes "APP_DB_HOST".
func DefaultEnvTransform(prefix string) EnvTransformFunc {
	return func(name string) string {
		env := strings.ReplaceAll(name, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// LoadEnv overrides declared properties from environment variables using
// the default transform. The text is converted to the declared primitive
// type here at the boundary; the converted value then passes through the
// normal Set validation chain. Read-only properties are skipped, since the
// environment cannot override them. Per-property failures are joined.
func (c *Config) LoadEnv(prefix string) error {
	return c.LoadEnvFunc(DefaultEnvTransform(prefix))
}

// LoadEnvFunc is LoadEnv with a caller-supplied name transformer.
func (c *Config) LoadEnvFunc(transform EnvTransformFunc) error {
	var loadErrors []error
	for _, name := range c.order {
		p := c.props[name]
		if p.readonly {
			continue
		}
		text, exists := os.LookupEnv(transform(name))
		if !exists {
			continue
		}
		value, err := parseText(p.spec, text)
		if err != nil {
			loadErrors = append(loadErrors, fmt.Errorf("env override for %q: %w", name, err))
			continue
		}
		if err := c.Set(name, value); err != nil {
			loadErrors = append(loadErrors, err)
		}
	}
	return errors.Join(loadErrors...)
}

// FromEnv declares the given properties and immediately applies environment
// overrides with the given prefix.
func FromEnv(prefix string, defs ...Property) (*Config, error) {
	c, err := New(defs...)
	if err != nil {
		return nil, err
	}
	if err := c.LoadEnv(prefix); err != nil {
		return nil, err
	}
	return c, nil
}

// DiscoverEnv returns, for every declared property whose transformed
// environment variable is set, the property name mapped to that variable.
func (c *Config) DiscoverEnv(prefix string) map[string]string {
	transform := DefaultEnvTransform(prefix)
	discovered := make(map[string]string)
	for name := range c.props {
		envVar := transform(name)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[name] = envVar
		}
	}
	return discovered
}

// parseText converts boundary text (environment variables, CLI arguments)
// into a value of the declared type. Union members are tried left to right.
func parseText(spec Spec, text string) (any, error) {
	switch spec.kind {
	case specString:
		return text, nil
	case specInt:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as int: %w", text, err)
		}
		return i, nil
	case specFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as float: %w", text, err)
		}
		return f, nil
	case specBool:
		return parseBoolText(text)
	case specNil:
		if text == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot parse %q as nil", text)
	case specList:
		if text == "" {
			return []string{}, nil
		}
		parts := strings.Split(text, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case specUnion:
		var firstErr error
		for _, m := range spec.elems {
			v, err := parseText(m, text)
			if err == nil {
				return v, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil, firstErr
	}
	return nil, fmt.Errorf("cannot parse text into %s", spec.Describe())
}

// parseBoolText accepts the usual spellings of boolean environment values.
func parseBoolText(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("cannot parse %q as bool", text)
}
