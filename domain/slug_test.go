package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/vcsbus/domain"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("should normalize a human-readable name", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			input    string
			expected string
		}{
			{
				name:     "should lowercase and hyphenate",
				input:    "My Project!",
				expected: "my-project",
			},
			{
				name:     "should collapse inner whitespace",
				input:    "some   spaced   name",
				expected: "some-spaced-name",
			},
			{
				name:     "should drop punctuation",
				input:    "Release: v2 (final)",
				expected: "release-v2-final",
			},
			{
				name:     "should keep an already valid slug unchanged",
				input:    "already-valid-slug",
				expected: "already-valid-slug",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				result := domain.Slugify(tt.input)

				// then
				assert.Equal(t, tt.expected, result)
			})
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		once := domain.Slugify("My Project!")

		// when
		twice := domain.Slugify(once)

		// then
		assert.Equal(t, once, twice)
	})

	t.Run("should be deterministic for a fixed input", func(t *testing.T) {
		t.Parallel()

		// when
		first := domain.Slugify("Some Fancy Name")
		second := domain.Slugify("Some Fancy Name")

		// then
		assert.Equal(t, first, second)
	})
}
