// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"inkpress/internal/store"
)

// Categories serves the category endpoints.
type Categories struct {
	store *store.CategoryStore
}

// NewCategories creates a category handler group backed by the given store.
func NewCategories(s *store.CategoryStore) *Categories {
	return &Categories{store: s}
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Create handles POST /api/categories.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindValidation, "invalid JSON body")
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	category, err := h.store.Create(req.Name, req.Description)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// List handles GET /api/categories. Categories come back sorted by name
// with their post counts.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Update handles PUT /api/categories/{id}. Renaming regenerates the slug.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindValidation, "invalid JSON body")
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, kindValidation, msg)
		return
	}

	category, err := h.store.Update(id, req.Name, req.Description)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, kindNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}. A category that still has
// posts is refused with precondition_failed and the offending count.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
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
