// File: tyconf/display.go
package tyconf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Render writes a deterministic diagnostic listing of every property to w:
// name, current value and declared type name, sorted by name, with [RO]
// markers on read-only properties and a [FROZEN] marker in the header when
// the Config is frozen. The output is meant for humans, not machines.
func (c *Config) Render(w io.Writer) {
	if len(c.props) == 0 {
		fmt.Fprintln(w, "No properties defined")
		return
	}

	header := "Configuration properties:"
	if c.frozen {
		header += " [FROZEN]"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", 44))

	names := make([]string, 0, len(c.props))
	for name := range c.props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.props[name]
		line := fmt.Sprintf("%-*s = %-*s %s",
			displayNameColWidth, name,
			displayValColWidth, formatValue(c.values[name]),
			p.spec.Describe())
		if p.readonly {
			line += " [RO]"
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, strings.Repeat("-", 44))
}

// Show prints the diagnostic listing to standard output.
func (c *Config) Show() {
	c.Render(os.Stdout)
}

// Dump returns the diagnostic listing as a string. Stable for a given set
// of properties and values, so it is safe to assert on in tests.
func (c *Config) Dump() string {
	var b strings.Builder
	c.Render(&b)
	return b.String()
}
