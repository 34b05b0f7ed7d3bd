// File: tyconf/validators/collections_test.go
package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmpty(t *testing.T) {
	v := NonEmpty()

	assert.NoError(t, v("x"))
	assert.NoError(t, v([]int{1}))
	assert.NoError(t, v(map[string]int{"a": 1}))

	assert.Error(t, v(""))
	assert.Error(t, v([]int{}))
	assert.Error(t, v(map[string]int{}))
	assert.Error(t, v(42))
}

func TestUniqueItems(t *testing.T) {
	v := UniqueItems()

	assert.NoError(t, v([]string{"a", "b", "c"}))
	assert.NoError(t, v([]int{}))

	assert.Error(t, v([]string{"a", "b", "a"}))
	assert.Error(t, v("not a sequence"))

	// non-comparable elements are reported, not a panic
	err := v([][]int{{1}, {2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not comparable")
}

func TestHasItems(t *testing.T) {
	v := HasItems("read", "write")

	assert.NoError(t, v([]string{"read", "write", "admin"}))

	err := v([]string{"read"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain items: [write]")
}

func TestMinMaxItems(t *testing.T) {
	assert.NoError(t, MinItems(2)([]int{1, 2}))
	assert.Error(t, MinItems(2)([]int{1}))

	assert.NoError(t, MaxItems(2)([]int{1, 2}))
	assert.Error(t, MaxItems(2)([]int{1, 2, 3}))

	// strings have a length too
	assert.NoError(t, MinItems(2)("ab"))
}

func TestHasKeys(t *testing.T) {
	v := HasKeys("host", "port")

	assert.NoError(t, v(map[string]any{"host": "h", "port": 1, "extra": true}))

	err := v(map[string]any{"host": "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain keys: [port]")

	assert.Error(t, v("not a map"))
	assert.Error(t, v(map[int]string{1: "x"})) // non-string keys rejected
}

func TestKeysIn(t *testing.T) {
	v := KeysIn("host", "port")

	assert.NoError(t, v(map[string]int{"host": 1}))
	assert.NoError(t, v(map[string]int{}))

	err := v(map[string]int{"host": 1, "stray": 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keys: [stray]")

	assert.Error(t, v([]string{"host"}))
}
