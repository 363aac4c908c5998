// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/models"
	"inkpress/internal/readingtime"
	"inkpress/internal/store"
)

// Posts serves the post endpoints.
type Posts struct {
	store *store.PostStore
}

// NewPosts creates a post handler group backed by the given store.
func NewPosts(s *store.PostStore) *Posts {
	return &Posts{store: s}
}

// postRequest is the JSON body for creating or updating a post.
// CategoryIDs distinguishes absent (nil, keep current associations on
// update) from present-but-empty (clear all associations).
type postRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"imageUrl"`
	Published   bool    `json:"published"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// postDetail is a single post enriched with derived reading metrics.
type postDetail struct {
	models.Post
	WordCount      int `json:"wordCount"`
	ReadingMinutes int `json:"readingMinutes"`
}

func newPostDetail(p *models.Post) postDetail {
	return postDetail{
		Post:           *p,
		WordCount:      readingtime.WordCount(p.Content),
		ReadingMinutes: readingtime.Minutes(p.Content),
	}
}

// Create handles POST /api/posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindValidation, "invalid JSON body")
		return
	}
	if msg := validatePost(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}
	if msg := validateImageURL(req.ImageURL); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	in := store.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		CategoryIDs: req.CategoryIDs,
	}
	if in.CategoryIDs == nil {
		// On create an absent list means no associations.
		in.CategoryIDs = []int64{}
	}

	post, err := h.store.Create(in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// List handles GET /api/posts. Query parameters: category_id,
// include_drafts, page, limit.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := store.ListOptions{
		IncludeDrafts: parseBool(q.Get("include_drafts")),
		Page:          models.ClampPage(parseIntOr(q.Get("page"), 1)),
		Limit:         models.ClampLimit(parseIntOr(q.Get("limit"), models.DefaultPageLimit)),
	}
	if raw := q.Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			writeError(w, http.StatusBadRequest, kindValidation, "category_id must be a positive integer")
			return
		}
		opts.CategoryID = &id
	}

	page, err := h.store.List(opts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /api/posts/{slug}. With include_drafts=true the
// published filter is dropped and drafts become addressable.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	postSlug := chi.URLParam(r, "slug")
	includeDrafts := parseBool(r.URL.Query().Get("include_drafts"))

	post, err := h.store.FindBySlug(postSlug, includeDrafts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, kindNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, newPostDetail(post))
}

// Update handles PUT /api/posts/{id}. The body is a full replacement;
// the slug is never regenerated.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindValidation, "invalid JSON body")
		return
	}
	if msg := validatePost(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}
	if msg := validateImageURL(req.ImageURL); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	post, err := h.store.Update(id, store.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, kindNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Publish handles POST /api/posts/{id}/publish.
func (h *Posts) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish handles POST /api/posts/{id}/unpublish.
func (h *Posts) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *Posts) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.store.SetPublished(id, published)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, kindNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}. Deleting a missing post still
// reports success so retries stay safe.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeSuccess(w)
}

// pathID parses the {id} URL parameter, writing a validation error on
// failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, kindValidation, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
