// File: tyconf/decode.go
package tyconf

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the current values into target, a pointer to a struct,
// using mapstructure with weakly-typed input. Field names are matched via
// the "tyconf" struct tag, falling back to the field name. String values
// decode into time.Duration fields and comma-separated strings into string
// slices.
func (c *Config) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "tyconf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(c.ValuesMap()); err != nil {
		return fmt.Errorf("failed to decode config values: %w", err)
	}
	return nil
}
