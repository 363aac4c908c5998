// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups posts. A post may belong to zero or more categories;
// the relation lives in the post_categories join table.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`

	// PostCount is populated by CategoryStore.List. It counts the
	// posts currently associated with this category.
	PostCount int `json:"post_count,omitempty"`
}
