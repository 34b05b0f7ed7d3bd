// File: tyconf/builder.go
package tyconf

import (
	"errors"
	"fmt"
	"os"
)

// CheckFunc validates a fully loaded *Config. It runs at the end of the
// build process and should return an error if the configuration as a whole
// is unusable (cross-property constraints, for example).
type CheckFunc func(c *Config) error

// Builder provides a fluent interface for declaring and loading a Config
// from multiple sources. Source precedence is fixed: command-line arguments
// override environment variables, which override the file, which overrides
// the declared defaults.
type Builder struct {
	defs      []Property
	file      string
	envPrefix string
	loadEnv   bool
	args      []string
	freeze    bool
	checks    []CheckFunc
}

// NewBuilder creates an empty configuration builder. Command-line arguments
// default to os.Args[1:].
func NewBuilder() *Builder {
	return &Builder{
		args: os.Args[1:],
	}
}

// Define appends property definitions to the builder.
func (b *Builder) Define(defs ...Property) *Builder {
	b.defs = append(b.defs, defs...)
	return b
}

// WithFile sets the configuration file path. A missing file is not fatal;
// declared defaults apply.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnvPrefix enables environment overrides with the given prefix.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.loadEnv = true
	return b
}

// WithArgs replaces the command-line arguments consulted for overrides.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithoutArgs disables command-line overrides.
func (b *Builder) WithoutArgs() *Builder {
	b.args = nil
	return b
}

// WithFreeze freezes the Config after a successful build, making it safe
// for concurrent reads without further ceremony.
func (b *Builder) WithFreeze() *Builder {
	b.freeze = true
	return b
}

// WithCheck adds a whole-config validation function executed at the end of
// the build. Multiple checks run in the order they were added.
func (b *Builder) WithCheck(fn CheckFunc) *Builder {
	if fn != nil {
		b.checks = append(b.checks, fn)
	}
	return b
}

// Build declares the properties and applies the configured sources in
// precedence order. A missing config file is tolerated; any other load or
// check failure aborts the build.
func (b *Builder) Build() (*Config, error) {
	c, err := New(b.defs...)
	if err != nil {
		return nil, err
	}

	if b.file != "" {
		if err := c.LoadFileInto(b.file); err != nil && !errors.Is(err, ErrFileNotFound) {
			return nil, err
		}
	}
	if b.loadEnv {
		if err := c.LoadEnv(b.envPrefix); err != nil {
			return nil, err
		}
	}
	if len(b.args) > 0 {
		if err := c.LoadArgs(b.args); err != nil {
			return nil, err
		}
	}

	for _, check := range b.checks {
		if err := check(c); err != nil {
			return nil, fmt.Errorf("config check failed: %w", err)
		}
	}

	if b.freeze {
		c.Freeze()
	}
	return c, nil
}

// MustBuild is Build but panics on error.
func (b *Builder) MustBuild() *Config {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("tyconf: build failed: %v", err))
	}
	return c
}
