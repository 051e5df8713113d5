package cmd //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	t.Parallel()

	t.Run("should return nil for no pairs", func(t *testing.T) {
		t.Parallel()

		// when
		fields, err := parseFields(nil)

		// then
		require.NoError(t, err)
		assert.Nil(t, fields)
	})

	t.Run("should keep JSON types for parseable values", func(t *testing.T) {
		t.Parallel()

		// given
		pairs := []string{"has_issues=true", "stars=42", "description=plain text"}

		// when
		fields, err := parseFields(pairs)

		// then
		require.NoError(t, err)
		assert.Equal(t, true, fields["has_issues"])
		assert.InEpsilon(t, float64(42), fields["stars"], 0.0001)
		assert.Equal(t, "plain text", fields["description"])
	})

	t.Run("should keep the full value after the first equals sign", func(t *testing.T) {
		t.Parallel()

		// given
		pairs := []string{"description=a=b=c"}

		// when
		fields, err := parseFields(pairs)

		// then
		require.NoError(t, err)
		assert.Equal(t, "a=b=c", fields["description"])
	})

	t.Run("should fail for a pair without equals sign", func(t *testing.T) {
		t.Parallel()

		// given
		pairs := []string{"novalue"}

		// when
		_, err := parseFields(pairs)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected key=value")
	})

	t.Run("should fail for an empty key", func(t *testing.T) {
		t.Parallel()

		// given
		pairs := []string{"=value"}

		// when
		_, err := parseFields(pairs)

		// then
		require.Error(t, err)
	})
}
