package org

import "strings"

// Capitalise upper-cases the first letter only, leaving the rest untouched.
func Capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// OrganisationName builds the display name used for every organisation,
// default or explicitly created: `<Capitalised seed>'s Organisation`.
func OrganisationName(seed string) string {
	return Capitalise(seed) + "'s Organisation"
}
