// internal/utils/slug.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// Slugify normalizes a display name into a URL-safe slug: lowercase,
// strip everything outside [a-z0-9 -], collapse whitespace and hyphen runs
// to a single hyphen, trim leading/trailing hyphens. A name made entirely
// of stripped characters yields the empty string.
func Slugify(displayName string) string {
	slug := strings.ToLower(displayName)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug probes existsFn with the base slug and then numbered
// variants (base-1, base-2, ...) until it finds an unused candidate. The
// result is probabilistically unique, not transactionally guaranteed: the
// probe and the eventual insert are not atomic, so callers must treat a
// uniqueness-constraint violation on insert as retryable.
func GenerateUniqueSlug(displayName string, existsFn func(candidate string) (bool, error)) (string, error) {
	base := Slugify(displayName)

	candidate := base
	for i := 1; ; i++ {
		taken, err := existsFn(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
