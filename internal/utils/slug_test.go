// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        string
	}{
		{"simple name", "John Doe", "john-doe"},
		{"uppercase", "JANE SMITH", "jane-smith"},
		{"extra whitespace", "  John   Doe  ", "john-doe"},
		{"special characters", "O'Brien & Sons!", "obrien-sons"},
		{"digits kept", "Agent 007", "agent-007"},
		{"repeated hyphens", "a---b", "a-b"},
		{"leading and trailing hyphens", "-John Doe-", "john-doe"},
		{"all symbols", "!!!", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.displayName))
		})
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	taken := map[string]bool{}
	exists := func(candidate string) (bool, error) {
		return taken[candidate], nil
	}

	slug, err := GenerateUniqueSlug("John Doe", exists)
	require.NoError(t, err)
	assert.Equal(t, "john-doe", slug)
	taken[slug] = true

	slug, err = GenerateUniqueSlug("John Doe", exists)
	require.NoError(t, err)
	assert.Equal(t, "john-doe-1", slug)
	taken[slug] = true

	slug, err = GenerateUniqueSlug("John Doe", exists)
	require.NoError(t, err)
	assert.Equal(t, "john-doe-2", slug)
}

func TestGenerateUniqueSlugDegenerateName(t *testing.T) {
	// A name that normalizes to the empty string still terminates with a
	// hyphen-suffixed sequence.
	taken := map[string]bool{"": true}
	exists := func(candidate string) (bool, error) {
		return taken[candidate], nil
	}

	slug, err := GenerateUniqueSlug("!!!", exists)
	require.NoError(t, err)
	assert.Equal(t, "-1", slug)
}
