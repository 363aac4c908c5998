// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from titles and names.
// Slugs are lowercase, hyphen-separated, and stable once assigned —
// they serve as the external lookup key for posts and categories.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything that isn't a lowercase letter, digit,
	// whitespace, or hyphen after normalization.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace matches runs of spaces, tabs, and underscores.
	whitespace = regexp.MustCompile(`[\s_]+`)
	// repeatedHyphens collapses consecutive hyphens into one.
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate derives a slug from the given title or name.
// Example: "Hello, World & Friends!" → "hello-world-and-friends"
func Generate(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.ReplaceAll(out, "&", " and ")
	out = whitespace.ReplaceAllString(out, "-")
	out = disallowed.ReplaceAllString(out, "")
	out = repeatedHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
