// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the blog API.
// Handlers are grouped by concern (posts, categories, stats) and receive
// their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/store"
)

// Error kinds exposed to API clients. Every failed request carries
// exactly one of these, never a raw storage error.
const (
	kindValidation   = "validation"
	kindConflict     = "conflict"
	kindNotFound     = "not_found"
	kindPrecondition = "precondition_failed"
	kindInternal     = "internal"
)

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`

	// PostCount accompanies precondition_failed on category deletion.
	PostCount *int `json:"post_count,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError emits a structured error response.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Kind: kind, Message: message}})
}

// writeStoreError translates a store-layer error into the API error
// taxonomy. Anything unrecognized is reported as internal and logged;
// the caller never sees driver details.
func writeStoreError(w http.ResponseWriter, err error) {
	var inUse *store.CategoryInUseError
	switch {
	case errors.Is(err, store.ErrSlugTaken):
		writeError(w, http.StatusConflict, kindConflict, "slug already exists")
	case errors.As(err, &inUse):
		count := inUse.PostCount
		writeJSON(w, http.StatusPreconditionFailed, errorBody{Error: errorDetail{
			Kind:      kindPrecondition,
			Message:   inUse.Error(),
			PostCount: &count,
		}})
	default:
		slog.Error("storage error", "error", err)
		writeError(w, http.StatusInternalServerError, kindInternal, "internal server error")
	}
}

// successBody acknowledges mutations that return no entity.
type successBody struct {
	Success bool `json:"success"`
}

// writeSuccess emits the {"success":true} acknowledgement.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successBody{Success: true})
}
