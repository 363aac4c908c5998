// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Pagination bounds enforced on every list request.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// Pagination describes one page of a post listing.
type Pagination struct {
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNextPage"`
	HasPrevious bool `json:"hasPreviousPage"`
}

// NewPagination computes the page envelope for a listing. totalPages is
// ceil(total/limit); hasNextPage holds iff more pages follow the current
// one, and page 1 never reports a previous page.
func NewPagination(total, page, limit int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// ClampLimit normalizes a requested page size into [1, MaxPageLimit],
// substituting the default when the request omits it.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ClampPage normalizes a requested page number; pages are 1-indexed.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
