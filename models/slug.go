package models

import "regexp"

// slugPattern restricts slugs to lowercase letters, digits and hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is usable as a post, category or tag
// slug. Bound to the "slug" binding tag in main.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
