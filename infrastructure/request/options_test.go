package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/vcsbus/infrastructure/request"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("should combine nested maps key-by-key", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"headers": map[string]string{"a": "1"}}
		additions := request.Options{"headers": map[string]string{"b": "2"}}

		// when
		merged, err := request.Merge(opts, additions)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, merged["headers"])
	})

	t.Run("should let addition entries win on colliding keys", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"headers": map[string]string{"Authorization": "Bearer forged"}}
		additions := request.Options{"headers": map[string]string{"Authorization": "Bearer real"}}

		// when
		merged, err := request.Merge(opts, additions)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Bearer real", merged["headers"].(map[string]string)["Authorization"])
	})

	t.Run("should add keys missing from the original bag", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"json": map[string]any{"name": "demo"}}
		additions := request.Options{"headers": map[string]string{"Accept": "application/json"}}

		// when
		merged, err := request.Merge(opts, additions)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "demo"}, merged["json"])
		assert.Equal(t, map[string]string{"Accept": "application/json"}, merged["headers"])
	})

	t.Run("should fail when the existing value is not a map", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"headers": "not-a-map"}
		additions := request.Options{"headers": map[string]string{"a": "1"}}

		// when
		_, err := request.Merge(opts, additions)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, request.ErrNotMergeable)
	})

	t.Run("should not mutate either input", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"headers": map[string]string{"a": "1"}}
		additions := request.Options{"headers": map[string]string{"b": "2"}}

		// when
		_, err := request.Merge(opts, additions)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1"}, opts["headers"])
		assert.Equal(t, map[string]string{"b": "2"}, additions["headers"])
	})

	t.Run("should handle generic map values", func(t *testing.T) {
		t.Parallel()

		// given
		opts := request.Options{"query": map[string]any{"public": false}}
		additions := request.Options{"query": map[string]any{"name": "demo"}}

		// when
		merged, err := request.Merge(opts, additions)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"public": false, "name": "demo"}, merged["query"])
	})

	t.Run("should accept a nil original bag", func(t *testing.T) {
		t.Parallel()

		// when
		merged, err := request.Merge(nil, request.Options{"headers": map[string]string{"a": "1"}})

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1"}, merged["headers"])
	})
}
