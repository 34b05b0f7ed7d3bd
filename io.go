// File: tyconf/io.go
package tyconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// The file adapters convert between on-disk formats and the plain-map
// contract of serialize.go. All validation happens in the core; this file
// only decodes, coerces and encodes.

// JSON renders the Config as JSON. With valuesOnly the output is a flat
// name-to-value object; otherwise the full-metadata format is used.
func (c *Config) JSON(valuesOnly bool) ([]byte, error) {
	data, err := json.MarshalIndent(c.exportMap(valuesOnly), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
	}
	return data, nil
}

// TOML renders the Config as TOML. Values-only output requires every value
// to be TOML-representable (no nils).
func (c *Config) TOML(valuesOnly bool) ([]byte, error) {
	data, err := toml.Marshal(c.exportMap(valuesOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	return data, nil
}

// YAML renders the Config as YAML.
func (c *Config) YAML(valuesOnly bool) ([]byte, error) {
	data, err := yaml.Marshal(c.exportMap(valuesOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}

func (c *Config) exportMap(valuesOnly bool) map[string]any {
	if valuesOnly {
		return c.ValuesMap()
	}
	return c.Export()
}

// FromJSON builds a Config from JSON in either map format. A values-only
// document requires a schema; see FromMap.
func FromJSON(data []byte, schema ...Property) (*Config, error) {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}
	return FromMap(raw, schema...)
}

// FromTOML builds a Config from TOML in either map format.
func FromTOML(data []byte, schema ...Property) (*Config, error) {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return FromMap(raw, schema...)
}

// FromYAML builds a Config from YAML in either map format.
func FromYAML(data []byte, schema ...Property) (*Config, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return FromMap(raw, schema...)
}

// LoadJSON merges a JSON document into an existing Config. Metadata
// documents contribute their per-property values; values-only documents are
// applied directly. Only declared properties are updated, through the
// normal Set validation chain.
func (c *Config) LoadJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse JSON config: %w", err)
	}
	return c.Merge(flattenImport(raw))
}

// LoadTOML merges a TOML document into an existing Config.
func (c *Config) LoadTOML(data []byte) error {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return c.Merge(flattenImport(raw))
}

// LoadYAML merges a YAML document into an existing Config.
func (c *Config) LoadYAML(data []byte) error {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return c.Merge(flattenImport(raw))
}

// flattenImport reduces a metadata document to its per-property values so
// Merge sees a plain values map either way.
func flattenImport(raw map[string]any) map[string]any {
	if !isMetadataMap(raw) {
		return raw
	}
	props, _ := raw[propertiesKey].(map[string]any)
	values := make(map[string]any, len(props))
	for name, entry := range props {
		if info, ok := entry.(map[string]any); ok {
			values[name] = info["value"]
		}
	}
	return values
}

// LoadFile builds a Config from a file, choosing the codec by extension
// (.json, .toml, .yaml/.yml). A missing file reports ErrFileNotFound so
// callers can fall back to defaults.
func LoadFile(path string, schema ...Property) (*Config, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FromJSON(data, schema...)
	case ".toml":
		return FromTOML(data, schema...)
	case ".yaml", ".yml":
		return FromYAML(data, schema...)
	}
	return nil, fmt.Errorf("unsupported config file format %q", filepath.Ext(path))
}

// LoadFileInto merges a file into an existing Config, codec by extension.
func (c *Config) LoadFileInto(path string) error {
	data, err := readConfigFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return c.LoadJSON(data)
	case ".toml":
		return c.LoadTOML(data)
	case ".yaml", ".yml":
		return c.LoadYAML(data)
	}
	return fmt.Errorf("unsupported config file format %q", filepath.Ext(path))
}

func readConfigFile(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check config file '%s': %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("config path '%s' is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return data, nil
}

// SaveFile writes the Config to a file, codec by extension, using an atomic
// temp-file-and-rename sequence so a crash never leaves a torn file.
func (c *Config) SaveFile(path string, valuesOnly bool) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = c.JSON(valuesOnly)
	case ".toml":
		data, err = c.TOML(valuesOnly)
	case ".yaml", ".yml":
		data, err = c.YAML(valuesOnly)
	default:
		return fmt.Errorf("unsupported config file format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // clean up temp file if rename fails

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to '%s': %w", path, err)
	}
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on config file '%s': %w", path, err)
	}

	return nil
}
