// File: tyconf/config.go
package tyconf

import (
	"fmt"
	"sort"
)

// Config is a runtime-validated configuration container. It owns an ordered
// set of property descriptors and their current values, plus a frozen flag
// that gates every mutation independently of per-property read-only flags.
//
// Config performs no internal locking; see the package documentation for
// the freeze-or-copy sharing model.
type Config struct {
	props  map[string]Property
	values map[string]any
	order  []string // insertion order for iteration and display
	frozen bool
}

// Item is one name/value pair produced by Items.
type Item struct {
	Name  string
	Value any
}

// New creates a Config from a batch of property definitions. The batch is
// atomic: if any definition is malformed or any name collides, no property
// is registered and the whole batch is rejected.
func New(defs ...Property) (*Config, error) {
	c := &Config{
		props:  make(map[string]Property, len(defs)),
		values: make(map[string]any, len(defs)),
	}
	for _, p := range defs {
		if p.err != nil {
			return nil, p.err
		}
		if _, exists := c.props[p.name]; exists {
			return nil, fmt.Errorf("property %q: %w", p.name, ErrDuplicate)
		}
		c.insert(p)
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level
// declarations where a malformed definition is a programming error.
func MustNew(defs ...Property) *Config {
	c, err := New(defs...)
	if err != nil {
		panic(fmt.Sprintf("tyconf: %v", err))
	}
	return c
}

// insert registers a validated property and seeds its value from the
// default. Callers must have checked for duplicates.
func (c *Config) insert(p Property) {
	c.props[p.name] = p
	c.values[p.name] = cloneValue(p.def)
	c.order = append(c.order, p.name)
}

// Add declares a single property on an existing Config, appended at the end
// of iteration order. It fails if the Config is frozen, if the name already
// exists, or if the definition is malformed.
func (c *Config) Add(name string, spec Spec, defaultValue any, opts ...Option) error {
	if c.frozen {
		return fmt.Errorf("cannot add property %q: %w", name, ErrFrozen)
	}
	if _, exists := c.props[name]; exists {
		return fmt.Errorf("property %q: %w", name, ErrDuplicate)
	}
	p := Define(name, spec, defaultValue, opts...)
	if p.err != nil {
		return p.err
	}
	c.insert(p)
	return nil
}

// Get returns the current value of a property.
func (c *Config) Get(name string) (any, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, fmt.Errorf("no such property %q: %w", name, ErrNotFound)
	}
	return v, nil
}

// GetOr returns the current value of a property, or fallback if the name is
// not declared.
func (c *Config) GetOr(name string, fallback any) any {
	if v, ok := c.values[name]; ok {
		return v
	}
	return fallback
}

// Set assigns a new value to a property after running the full check chain.
// Failures follow a fixed precedence: frozen state, then existence, then
// read-only flag, then type specification, then validator.
func (c *Config) Set(name string, value any) error {
	return c.setValue(name, value, false)
}

// setValue implements Set for both the property-style and key-style
// surfaces; keyStyle only changes how an unknown name is reported.
func (c *Config) setValue(name string, value any, keyStyle bool) error {
	if c.frozen {
		return fmt.Errorf("cannot set %q: %w", name, ErrFrozen)
	}
	p, ok := c.props[name]
	if !ok {
		return c.notFound(name, keyStyle)
	}
	if p.readonly {
		return fmt.Errorf("cannot set %q: %w", name, ErrReadOnly)
	}
	if !p.spec.Matches(value) {
		return typeMismatch(name, p.spec, value)
	}
	if err := p.validate(value); err != nil {
		return err
	}
	c.values[name] = value
	return nil
}

// checkSet runs the Set check chain without committing. Used by Update to
// reject a whole batch before any value changes.
func (c *Config) checkSet(name string, value any) error {
	if c.frozen {
		return fmt.Errorf("cannot set %q: %w", name, ErrFrozen)
	}
	p, ok := c.props[name]
	if !ok {
		return c.notFound(name, false)
	}
	if p.readonly {
		return fmt.Errorf("cannot set %q: %w", name, ErrReadOnly)
	}
	if !p.spec.Matches(value) {
		return typeMismatch(name, p.spec, value)
	}
	return p.validate(value)
}

// Update assigns several values at once, all-or-nothing: every entry is
// checked first (in sorted name order, so failures are deterministic) and
// nothing is committed unless the whole batch passes.
func (c *Config) Update(entries map[string]any) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.checkSet(name, entries[name]); err != nil {
			return err
		}
	}
	for _, name := range names {
		c.values[name] = entries[name]
	}
	return nil
}

// TrySet is Set with every failure converted into a boolean false. It never
// returns an error.
func (c *Config) TrySet(name string, value any) bool {
	return c.setValue(name, value, false) == nil
}

// Remove deletes a property and its value unconditionally: read-only
// properties can be removed, and removal works on a frozen Config. Removal
// is not modification in this model; it only fails for unknown names.
func (c *Config) Remove(name string) error {
	if _, ok := c.props[name]; !ok {
		return fmt.Errorf("no such property %q: %w", name, ErrNotFound)
	}
	c.delete(name)
	return nil
}

func (c *Config) delete(name string) {
	delete(c.props, name)
	delete(c.values, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Reset restores every non-read-only property to its declared default.
// Read-only values are untouched. Validators are not re-invoked; defaults
// were already validated at definition time. Fails on a frozen Config.
func (c *Config) Reset() error {
	if c.frozen {
		return fmt.Errorf("cannot reset: %w", ErrFrozen)
	}
	for name, p := range c.props {
		if !p.readonly {
			c.values[name] = cloneValue(p.def)
		}
	}
	return nil
}

// Copy returns an independent Config with identical descriptors (original
// defaults, read-only flags and validators included) and identical current
// values. Container values are deep-copied, so mutating the copy is never
// observable in the source. The copy is always unfrozen.
func (c *Config) Copy() *Config {
	out := &Config{
		props:  make(map[string]Property, len(c.props)),
		values: make(map[string]any, len(c.values)),
		order:  append([]string(nil), c.order...),
	}
	for name, p := range c.props {
		out.props[name] = p
		out.values[name] = cloneValue(c.values[name])
	}
	return out
}

// Freeze blocks all further mutation of values and descriptors. Freezing is
// idempotent and never fails; Remove stays available on a frozen Config.
func (c *Config) Freeze() { c.frozen = true }

// Unfreeze re-enables mutation. Idempotent.
func (c *Config) Unfreeze() { c.frozen = false }

// Frozen reports whether the Config is frozen.
func (c *Config) Frozen() bool { return c.frozen }

// Has reports whether a property is declared.
func (c *Config) Has(name string) bool {
	_, ok := c.props[name]
	return ok
}

// Len returns the number of declared properties.
func (c *Config) Len() int { return len(c.order) }

// Keys returns the property names in insertion order.
func (c *Config) Keys() []string {
	return append([]string(nil), c.order...)
}

// Values returns the current values in insertion order.
func (c *Config) Values() []any {
	out := make([]any, len(c.order))
	for i, name := range c.order {
		out[i] = c.values[name]
	}
	return out
}

// Items returns name/value pairs in insertion order.
func (c *Config) Items() []Item {
	out := make([]Item, len(c.order))
	for i, name := range c.order {
		out[i] = Item{Name: name, Value: c.values[name]}
	}
	return out
}

// Describe returns the descriptor of a declared property.
func (c *Config) Describe(name string) (Property, error) {
	p, ok := c.props[name]
	if !ok {
		return Property{}, fmt.Errorf("no such property %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// At returns the current value using the key-style surface. Unknown names
// report a "key not found" condition; errors.Is(err, ErrNotFound) still
// holds, only the presentation differs from Get.
func (c *Config) At(name string) (any, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, c.notFound(name, true)
	}
	return v, nil
}

// Put assigns a value using the key-style surface. Identical to Set except
// for how an unknown name is reported.
func (c *Config) Put(name string, value any) error {
	return c.setValue(name, value, true)
}

// Delete removes a property using the key-style surface. Identical to
// Remove except for how an unknown name is reported.
func (c *Config) Delete(name string) error {
	if _, ok := c.props[name]; !ok {
		return c.notFound(name, true)
	}
	c.delete(name)
	return nil
}

// notFound phrases an unknown-name error for the requested surface. Both
// phrasings wrap the same ErrNotFound sentinel.
func (c *Config) notFound(name string, keyStyle bool) error {
	if keyStyle {
		return fmt.Errorf("key %q not found: %w", name, ErrNotFound)
	}
	return fmt.Errorf("no such property %q: %w", name, ErrNotFound)
}
