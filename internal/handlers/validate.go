package handlers

import (
	"strings"
	"unicode/utf8"

	"inkpress/internal/slug"
)

// Validation limits for post and category fields, matching the column
// sizes in the schema.
const (
	maxTitleLen       = 255
	maxContentLen     = 100_000
	maxImageURLLen    = 2_048
	maxNameLen        = 100
	maxDescriptionLen = 1_000
)

// validatePost checks post inputs and returns the first problem found.
// Validation runs before any storage call.
func validatePost(title, content string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 255 characters)."
	}
	if slug.Generate(title) == "" {
		return "Title must contain at least one letter or digit."
	}
	if strings.TrimSpace(content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validateImageURL checks the optional cover image reference.
func validateImageURL(imageURL *string) string {
	if imageURL == nil {
		return ""
	}
	if utf8.RuneCountInString(*imageURL) > maxImageURLLen {
		return "Image URL is too long (max 2,048 characters)."
	}
	return ""
}

// validateCategory checks category inputs and returns the first problem found.
func validateCategory(name string, description *string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}
	if slug.Generate(name) == "" {
		return "Name must contain at least one letter or digit."
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		return "Description is too long (max 1,000 characters)."
	}
	return ""
}
