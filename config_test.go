// File: tyconf/config_test.go
package tyconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portValidator(v any) error {
	n, ok := v.(int)
	if !ok {
		if n64, ok64 := v.(int64); ok64 {
			n, ok = int(n64), true
		}
	}
	if !ok {
		return errors.New("not an int")
	}
	if n < 1024 || n > 65535 {
		return errors.New("must be between 1024 and 65535")
	}
	return nil
}

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := New(
		Define("version", String, "1.0.0", ReadOnly()),
		Define("host", String, "localhost"),
		Define("port", Int, 8080, WithValidator(portValidator)),
		Define("debug", Bool, false),
		Define("tags", List(String), []string{"web"}),
	)
	require.NoError(t, err)
	return cfg
}

// TestBatchDeclaration tests atomic construction from a definition batch
func TestBatchDeclaration(t *testing.T) {
	t.Run("ValidBatch", func(t *testing.T) {
		cfg := newTestConfig(t)
		assert.Equal(t, 5, cfg.Len())
		assert.Equal(t, []string{"version", "host", "port", "debug", "tags"}, cfg.Keys())
	})

	t.Run("MalformedEntryRejectsWholeBatch", func(t *testing.T) {
		cfg, err := New(
			Define("host", String, "localhost"),
			Define("port", Int, "8080"), // wrong-typed default
		)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrConstruction)
	})

	t.Run("DuplicateNameRejectsWholeBatch", func(t *testing.T) {
		cfg, err := New(
			Define("host", String, "a"),
			Define("host", String, "b"),
		)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("MustNewPanicsOnError", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(Define("port", Int, "8080"))
		})
	})
}

// TestAdd tests single-property declaration on a live config
func TestAdd(t *testing.T) {
	t.Run("AppendsAtEndOfOrder", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Add("retries", Int, 3))
		assert.Equal(t, []string{"version", "host", "port", "debug", "tags", "retries"}, cfg.Keys())

		v, err := cfg.Get("retries")
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("FrozenBeatsEverything", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		// Even a duplicate, malformed add reports the frozen state first
		err := cfg.Add("host", Int, "bad")
		assert.ErrorIs(t, err, ErrFrozen)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Add("host", String, "x")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("ConstructionErrorSurfaces", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Add("_secret", String, "x")
		assert.ErrorIs(t, err, ErrConstruction)
		assert.False(t, cfg.Has("_secret"))
	})
}

// TestGet tests value retrieval and the fallback variant
func TestGet(t *testing.T) {
	cfg := newTestConfig(t)

	v, err := cfg.Get("host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", v)

	_, err = cfg.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `no such property "missing"`)

	assert.Equal(t, "localhost", cfg.GetOr("host", "fallback"))
	assert.Equal(t, "fallback", cfg.GetOr("missing", "fallback"))
}

// TestSetPrecedence pins the fixed failure order:
// frozen > existence > readonly > type > validator
func TestSetPrecedence(t *testing.T) {
	t.Run("FrozenBeatsReadOnlyAndType", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		// read-only property, wrong-typed value: frozen must win
		err := cfg.Set("version", 42)
		assert.ErrorIs(t, err, ErrFrozen)
		assert.NotErrorIs(t, err, ErrReadOnly)
		assert.NotErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("FrozenBeatsExistence", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		assert.ErrorIs(t, cfg.Set("missing", 1), ErrFrozen)
	})

	t.Run("ExistenceBeatsType", func(t *testing.T) {
		cfg := newTestConfig(t)
		assert.ErrorIs(t, cfg.Set("missing", struct{}{}), ErrNotFound)
	})

	t.Run("ReadOnlyBeatsType", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Set("version", 42)
		assert.ErrorIs(t, err, ErrReadOnly)
		assert.NotErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("TypeBeatsValidator", func(t *testing.T) {
		cfg := newTestConfig(t)
		// "80" fails both the type check and the validator; type must win
		err := cfg.Set("port", "80")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrValidation)
	})

	t.Run("ValidatorLast", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Set("port", 80)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "must be between 1024 and 65535")
	})

	t.Run("ValidSetCommits", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Set("port", 3000))
		v, _ := cfg.Get("port")
		assert.Equal(t, 3000, v)
	})
}

// TestTypeMismatchContext verifies the structured error payload
func TestTypeMismatchContext(t *testing.T) {
	cfg := newTestConfig(t)
	err := cfg.Set("port", "80")

	var tme *TypeMismatchError
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, "port", tme.Property)
	assert.Equal(t, "int", tme.Expected)
	assert.Equal(t, "string", tme.Actual)
}

// TestUpdate pins all-or-nothing batch semantics
func TestUpdate(t *testing.T) {
	t.Run("AllValidCommits", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Update(map[string]any{
			"host": "0.0.0.0",
			"port": 3000,
		}))
		host, _ := cfg.Get("host")
		port, _ := cfg.Get("port")
		assert.Equal(t, "0.0.0.0", host)
		assert.Equal(t, 3000, port)
	})

	t.Run("OneInvalidEntryCommitsNothing", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Update(map[string]any{
			"host": "0.0.0.0",
			"port": 80, // validator rejects
		})
		assert.ErrorIs(t, err, ErrValidation)

		// the valid entry must not have been applied
		host, _ := cfg.Get("host")
		assert.Equal(t, "localhost", host)
	})

	t.Run("FailuresReportedInSortedNameOrder", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.Update(map[string]any{
			"debug": "not a bool",
			"port":  80,
		})
		// "debug" sorts before "port", so the type error wins every run
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("EmptyUpdateIsNoOp", func(t *testing.T) {
		cfg := newTestConfig(t)
		assert.NoError(t, cfg.Update(nil))
	})
}

// TestTrySet tests the one sanctioned non-raising mutation path
func TestTrySet(t *testing.T) {
	cfg := newTestConfig(t)

	assert.True(t, cfg.TrySet("port", 9000))
	v, _ := cfg.Get("port")
	assert.Equal(t, 9000, v)

	assert.False(t, cfg.TrySet("port", "invalid"))
	assert.False(t, cfg.TrySet("port", 80))
	assert.False(t, cfg.TrySet("missing", 1))
	assert.False(t, cfg.TrySet("version", "2.0.0"))

	cfg.Freeze()
	assert.False(t, cfg.TrySet("port", 9001))
	v, _ = cfg.Get("port")
	assert.Equal(t, 9000, v)
}

// TestRemove tests the intentional removal asymmetry: removal is not
// modification, so neither read-only flags nor the frozen state block it
func TestRemove(t *testing.T) {
	t.Run("RemovesReadOnlyProperty", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Remove("version"))
		assert.False(t, cfg.Has("version"))
	})

	t.Run("RemovesFromFrozenConfig", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		require.NoError(t, cfg.Remove("host"))
		assert.False(t, cfg.Has("host"))
	})

	t.Run("NotFound", func(t *testing.T) {
		cfg := newTestConfig(t)
		assert.ErrorIs(t, cfg.Remove("missing"), ErrNotFound)
	})

	t.Run("KeySetStaysConsistent", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Remove("port"))
		assert.Equal(t, []string{"version", "host", "debug", "tags"}, cfg.Keys())
		assert.Len(t, cfg.Values(), 4)
	})
}

// TestReset tests default restoration semantics
func TestReset(t *testing.T) {
	t.Run("RestoresNonReadOnlyDefaults", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Set("port", 3000))
		require.NoError(t, cfg.Set("host", "example.com"))

		require.NoError(t, cfg.Reset())

		port, _ := cfg.Get("port")
		host, _ := cfg.Get("host")
		assert.Equal(t, 8080, port)
		assert.Equal(t, "localhost", host)
	})

	t.Run("ReadOnlyValuesUntouched", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Reset())
		v, _ := cfg.Get("version")
		assert.Equal(t, "1.0.0", v)
	})

	t.Run("FailsWhenFrozen", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		assert.ErrorIs(t, cfg.Reset(), ErrFrozen)
	})

	t.Run("ResetClonesContainerDefaults", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Reset())

		v, _ := cfg.Get("tags")
		v.([]string)[0] = "mutated"

		require.NoError(t, cfg.Reset())
		fresh, _ := cfg.Get("tags")
		assert.Equal(t, []string{"web"}, fresh)
	})
}

// TestCopy tests independence and the always-unfrozen rule
func TestCopy(t *testing.T) {
	t.Run("ValuesEqualAfterCopy", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.Set("port", 3000))
		cp := cfg.Copy()
		assert.Equal(t, cfg.ValuesMap(), cp.ValuesMap())
	})

	t.Run("CopyOfFrozenIsUnfrozen", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Freeze()
		cp := cfg.Copy()
		assert.False(t, cp.Frozen())
		assert.NoError(t, cp.Set("port", 3000))
	})

	t.Run("DescriptorsSurvive", func(t *testing.T) {
		cfg := newTestConfig(t)
		cp := cfg.Copy()

		assert.ErrorIs(t, cp.Set("version", "2.0.0"), ErrReadOnly)
		assert.ErrorIs(t, cp.Set("port", 80), ErrValidation)

		// reset on the copy restores the original defaults
		require.NoError(t, cp.Set("port", 3000))
		require.NoError(t, cp.Reset())
		v, _ := cp.Get("port")
		assert.Equal(t, 8080, v)
	})

	t.Run("ContainerValuesAreIndependent", func(t *testing.T) {
		cfg := newTestConfig(t)
		cp := cfg.Copy()

		v, _ := cp.Get("tags")
		v.([]string)[0] = "mutated"

		original, _ := cfg.Get("tags")
		assert.Equal(t, []string{"web"}, original)
	})

	t.Run("CopyDoesNotShareOrder", func(t *testing.T) {
		cfg := newTestConfig(t)
		cp := cfg.Copy()
		require.NoError(t, cp.Remove("host"))
		assert.True(t, cfg.Has("host"))
		assert.Equal(t, 5, cfg.Len())
	})
}

// TestFreezeIdempotence tests that the flag flips never fail
func TestFreezeIdempotence(t *testing.T) {
	cfg := newTestConfig(t)

	cfg.Freeze()
	cfg.Freeze()
	assert.True(t, cfg.Frozen())

	cfg.Unfreeze()
	cfg.Unfreeze()
	assert.False(t, cfg.Frozen())

	require.NoError(t, cfg.Set("port", 3000))
}

// TestIteration tests insertion-order iteration and membership
func TestIteration(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, []string{"version", "host", "port", "debug", "tags"}, cfg.Keys())
	assert.Equal(t, []any{"1.0.0", "localhost", 8080, false, []string{"web"}}, cfg.Values())

	items := cfg.Items()
	require.Len(t, items, 5)
	assert.Equal(t, Item{Name: "version", Value: "1.0.0"}, items[0])
	assert.Equal(t, Item{Name: "tags", Value: []string{"web"}}, items[4])

	assert.True(t, cfg.Has("host"))
	assert.False(t, cfg.Has("missing"))
}

// TestDescribeProperty tests descriptor retrieval
func TestDescribeProperty(t *testing.T) {
	cfg := newTestConfig(t)

	p, err := cfg.Describe("version")
	require.NoError(t, err)
	assert.True(t, p.IsReadOnly())
	assert.Equal(t, "1.0.0", p.Default())

	_, err = cfg.Describe("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestKeyStyleSurface tests that the key-style facade reports a distinct
// presentational kind for unknown names while sharing the sentinel
func TestKeyStyleSurface(t *testing.T) {
	cfg := newTestConfig(t)

	t.Run("At", func(t *testing.T) {
		v, err := cfg.At("host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", v)

		_, err = cfg.At("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), `key "missing" not found`)
	})

	t.Run("Put", func(t *testing.T) {
		require.NoError(t, cfg.Put("port", 3000))
		v, _ := cfg.Get("port")
		assert.Equal(t, 3000, v)

		err := cfg.Put("missing", 1)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), `key "missing" not found`)
	})

	t.Run("PutKeepsCheckChain", func(t *testing.T) {
		assert.ErrorIs(t, cfg.Put("version", "2.0.0"), ErrReadOnly)
		assert.ErrorIs(t, cfg.Put("port", 80), ErrValidation)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cfg.Delete("debug"))
		assert.False(t, cfg.Has("debug"))

		err := cfg.Delete("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), `key "missing" not found`)
	})

	t.Run("BothSurfacesShareTheSentinel", func(t *testing.T) {
		_, attrErr := cfg.Get("missing")
		_, keyErr := cfg.At("missing")
		assert.ErrorIs(t, attrErr, ErrNotFound)
		assert.ErrorIs(t, keyErr, ErrNotFound)
		assert.NotEqual(t, attrErr.Error(), keyErr.Error())
	})
}

// TestEndToEndScenario walks the canonical declare/get/set/freeze sequence
func TestEndToEndScenario(t *testing.T) {
	cfg, err := New(
		Define("version", String, "1.0.0", ReadOnly()),
		Define("port", Int, 8080, WithValidator(portValidator)),
	)
	require.NoError(t, err)

	v, err := cfg.Get("version")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)

	require.NoError(t, cfg.Set("port", 3000))
	p, _ := cfg.Get("port")
	assert.Equal(t, 3000, p)

	assert.ErrorIs(t, cfg.Set("port", 80), ErrValidation)
	assert.ErrorIs(t, cfg.Set("version", "2.0.0"), ErrReadOnly)

	cfg.Freeze()
	assert.ErrorIs(t, cfg.Set("port", 4000), ErrFrozen)
}
