// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSlugTaken is returned when an insert or update would collide with
// an existing slug. The database unique constraint is the source of
// truth; the raw driver error is translated here so callers never see
// engine-specific codes.
var ErrSlugTaken = errors.New("slug already exists")

// CategoryInUseError blocks deletion of a category that still has posts
// associated with it. PostCount reports how many.
type CategoryInUseError struct {
	PostCount int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category is in use by %d post(s)", e.PostCount)
}

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations (class 23, integrity constraint violation).
const uniqueViolation = "23505"

// isUniqueViolation reports whether err wraps a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
