// File: tyconf/cli.go
package tyconf

import (
	"errors"
	"fmt"
	"strings"
)

// LoadArgs overrides declared properties from command-line arguments in the
// form "--name value" or "--flag" (bare flags read as true). Arguments for
// names that are not declared are ignored, so application flags can share
// the argument list. Values are converted to the declared type at this
// boundary, then pass through the normal Set validation chain.
func (c *Config) LoadArgs(args []string) error {
	overrides := parseArgs(args)

	var loadErrors []error
	for _, name := range c.order {
		text, ok := overrides[name]
		if !ok {
			continue
		}
		p := c.props[name]
		value, err := parseText(p.spec, text)
		if err != nil {
			loadErrors = append(loadErrors, fmt.Errorf("argument override for %q: %w", name, err))
			continue
		}
		if err := c.Set(name, value); err != nil {
			loadErrors = append(loadErrors, err)
		}
	}
	return errors.Join(loadErrors...)
}

// parseArgs collects "--key value" and "--flag" pairs into raw text values.
// Non-flag arguments are skipped.
func parseArgs(args []string) map[string]string {
	result := make(map[string]string)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		key := strings.TrimPrefix(arg, "--")
		if key == "" {
			i++
			continue
		}

		// --key=value form
		if eq := strings.IndexByte(key, '='); eq >= 0 {
			result[key[:eq]] = key[eq+1:]
			i++
			continue
		}

		// Bare flag if the next argument is another flag or absent
		if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
			result[key] = "true"
			i++
		} else {
			result[key] = args[i+1]
			i += 2
		}
	}
	return result
}
