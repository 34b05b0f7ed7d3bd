// File: tyconf/validators/validators_test.go
package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barabasz/tyconf"
)

func TestAll(t *testing.T) {
	v := All(Min(0), Max(100))

	assert.NoError(t, v(50))
	assert.NoError(t, v(0))
	assert.NoError(t, v(100))

	// first failure wins
	err := v(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be >= 0")

	err = v(101)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be <= 100")
}

func TestAllEmpty(t *testing.T) {
	assert.NoError(t, All()(42))
}

func TestAny(t *testing.T) {
	// a port is valid if it is in the privileged-free range, or zero
	// meaning "pick one for me"
	v := Any(Range(1024, 65535), OneOf(0))

	assert.NoError(t, v(8080))
	assert.NoError(t, v(0))

	err := v(80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must satisfy at least one of:")
	assert.Contains(t, err.Error(), "must be >= 1024")
	assert.Contains(t, err.Error(), "must be one of [0]")
}

func TestOneOf(t *testing.T) {
	v := OneOf("debug", "info", "warn", "error")

	assert.NoError(t, v("info"))

	err := v("trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestNotIn(t *testing.T) {
	v := NotIn("root", "admin")

	assert.NoError(t, v("alice"))
	assert.Error(t, v("root"))
}

func TestValidatorsPlugIntoProperties(t *testing.T) {
	cfg, err := tyconf.New(
		tyconf.Define("port", tyconf.Int, 8080,
			tyconf.WithValidator(All(Range(1024, 65535), NotIn(8443)))),
		tyconf.Define("log_level", tyconf.String, "info",
			tyconf.WithValidator(OneOf("debug", "info", "warn", "error"))),
	)
	require.NoError(t, err)

	assert.NoError(t, cfg.Set("port", 3000))
	assert.ErrorIs(t, cfg.Set("port", 80), tyconf.ErrValidation)
	assert.ErrorIs(t, cfg.Set("port", 8443), tyconf.ErrValidation)
	assert.ErrorIs(t, cfg.Set("log_level", "trace"), tyconf.ErrValidation)

	err = cfg.Set("port", 80)
	assert.Contains(t, err.Error(), "must be >= 1024")
}
