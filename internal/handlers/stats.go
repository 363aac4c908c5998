// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/store"
)

// Stats serves aggregate content counts.
type Stats struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewStats creates the stats handler.
func NewStats(posts *store.PostStore, categories *store.CategoryStore) *Stats {
	return &Stats{posts: posts, categories: categories}
}

type statsBody struct {
	PublishedPosts int `json:"publishedPosts"`
	DraftPosts     int `json:"draftPosts"`
	TotalPosts     int `json:"totalPosts"`
	Categories     int `json:"categories"`
}

// Get handles GET /api/stats.
func (h *Stats) Get(w http.ResponseWriter, r *http.Request) {
	published, drafts, err := h.posts.Counts()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	categoryCount, err := h.categories.Count()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsBody{
		PublishedPosts: published,
		DraftPosts:     drafts,
		TotalPosts:     published + drafts,
		Categories:     categoryCount,
	})
}
