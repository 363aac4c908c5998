// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared by the store and
// handler layers.
package models

import "time"

// Post represents a blog post. Content is stored as raw markdown and
// never rendered server-side. The slug is derived from the title at
// creation time and stays stable for the lifetime of the post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`

	// Categories is populated by store queries that embed the post's
	// category set. Always a slice, never nil, in API responses.
	Categories []Category `json:"categories"`
}

// IsDraft returns true if the post is not published.
func (p *Post) IsDraft() bool {
	return !p.Published
}
