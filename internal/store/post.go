// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the parameterized SQL behind the blog's query
// and mutation layer. Stores return nil (not an error) for lookups that
// match no row; constraint violations are translated into domain errors.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"inkpress/internal/models"
	"inkpress/internal/slug"
)

// PostStore handles all post-related database operations, including the
// post/category association set.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// PostInput carries the full field set for create and update. Updates
// replace every field wholesale; there is no partial patch. A nil
// CategoryIDs slice leaves the association set untouched, an empty
// slice clears it.
type PostInput struct {
	Title       string
	Content     string
	ImageURL    *string
	Published   bool
	CategoryIDs []int64
}

// ListOptions selects one page of posts. IncludeDrafts is a visibility
// toggle: true returns only drafts, false returns only published posts;
// the two views are never unioned.
type ListOptions struct {
	CategoryID    *int64
	IncludeDrafts bool
	Page          int
	Limit         int
}

// PostPage is one page of posts plus its pagination envelope.
type PostPage struct {
	Posts      []models.Post     `json:"posts"`
	Pagination models.Pagination `json:"pagination"`
}

// postColumns lists the posts table columns in scan order, prefixed for
// queries that alias posts as p.
const postColumns = `p.id, p.title, p.content, p.slug, p.image_url, p.published, p.created_at`

// categoriesJoin aggregates each post's category set into a JSON array
// so a listing stays a single query. COALESCE guarantees '[]' for posts
// without categories.
const categoriesJoin = `
	LEFT JOIN (
		SELECT pc.post_id,
		       json_agg(json_build_object('id', c.id, 'name', c.name, 'slug', c.slug) ORDER BY c.name) AS categories
		FROM post_categories pc
		INNER JOIN categories c ON c.id = pc.category_id
		GROUP BY pc.post_id
	) cats ON cats.post_id = p.id`

// scanPost scans a post row followed by its aggregated category JSON.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var catJSON []byte
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug,
		&p.ImageURL, &p.Published, &p.CreatedAt, &catJSON,
	)
	if err != nil {
		return nil, err
	}
	p.Categories = []models.Category{}
	if len(catJSON) > 0 {
		if err := json.Unmarshal(catJSON, &p.Categories); err != nil {
			return nil, fmt.Errorf("decode categories: %w", err)
		}
	}
	return &p, nil
}

// Create inserts a new post and its category associations in a single
// transaction. The slug is derived from the title; a collision with an
// existing post's slug returns ErrSlugTaken.
func (s *PostStore) Create(in PostInput) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`
		INSERT INTO posts (title, content, slug, image_url, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, in.Title, in.Content, slug.Generate(in.Title), in.ImageURL, in.Published).Scan(&id)
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := replaceAssociations(tx, id, in.CategoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}
	return s.FindByID(id)
}

// replaceAssociations deletes a post's current category associations and
// inserts the supplied set. Duplicate ids in the input are absorbed by
// ON CONFLICT DO NOTHING. A nil slice means "leave unchanged".
func replaceAssociations(tx *sql.Tx, postID int64, categoryIDs []int64) error {
	if categoryIDs == nil {
		return nil
	}

	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear associations: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO post_categories (post_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare association insert: %w", err)
	}
	defer stmt.Close()

	for _, cid := range categoryIDs {
		if _, err := stmt.Exec(postID, cid); err != nil {
			return fmt.Errorf("associate category %d: %w", cid, err)
		}
	}
	return nil
}

// List returns one page of posts matching the options, newest first,
// with each post's category set embedded.
func (s *PostStore) List(opts ListOptions) (*PostPage, error) {
	page := models.ClampPage(opts.Page)
	limit := models.ClampLimit(opts.Limit)
	offset := (page - 1) * limit

	// IncludeDrafts selects which side of the published flag is visible.
	published := !opts.IncludeDrafts

	where := `WHERE p.published = $1`
	countArgs := []any{published}
	listArgs := []any{published, limit, offset}
	if opts.CategoryID != nil {
		where += ` AND EXISTS (
			SELECT 1 FROM post_categories f
			WHERE f.post_id = p.id AND f.category_id = $2)`
		countArgs = append(countArgs, *opts.CategoryID)
		listArgs = []any{published, *opts.CategoryID, limit, offset}
	}

	var total int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts p `+where, countArgs...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	limitClause := ` ORDER BY p.created_at DESC, p.id DESC LIMIT $2 OFFSET $3`
	if opts.CategoryID != nil {
		limitClause = ` ORDER BY p.created_at DESC, p.id DESC LIMIT $3 OFFSET $4`
	}

	rows, err := s.db.Query(`
		SELECT `+postColumns+`, COALESCE(cats.categories, '[]'::json)
		FROM posts p`+categoriesJoin+`
		`+where+limitClause, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:      posts,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
}

// FindByID retrieves a post by id with its category set, regardless of
// published state. Returns nil if not found.
func (s *PostStore) FindByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`, COALESCE(cats.categories, '[]'::json)
		FROM posts p`+categoriesJoin+`
		WHERE p.id = $1
	`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a post by its slug. Unless includeDrafts is set,
// an unpublished post under that slug is invisible and the lookup
// returns nil, exactly as if no such post existed.
func (s *PostStore) FindBySlug(postSlug string, includeDrafts bool) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`, COALESCE(cats.categories, '[]'::json)
		FROM posts p`+categoriesJoin+`
		WHERE p.slug = $1 AND ($2 OR p.published = TRUE)
	`, postSlug, includeDrafts)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Update replaces every field of an existing post and, when CategoryIDs
// is non-nil, its category set, in a single transaction. The slug is
// never regenerated: URLs stay stable across title changes. Returns nil
// if the id matches no post.
func (s *PostStore) Update(id int64, in PostInput) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE posts SET title = $1, content = $2, image_url = $3, published = $4
		WHERE id = $5
	`, in.Title, in.Content, in.ImageURL, in.Published, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	} else if n == 0 {
		return nil, nil
	}

	if err := replaceAssociations(tx, id, in.CategoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update post: %w", err)
	}
	return s.FindByID(id)
}

// SetPublished flips the published flag. The operation is idempotent: a
// post already in the target state is returned unchanged. Returns nil
// if the id matches no post.
func (s *PostStore) SetPublished(id int64, published bool) (*models.Post, error) {
	res, err := s.db.Exec(`UPDATE posts SET published = $1 WHERE id = $2`, published, id)
	if err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	} else if n == 0 {
		return nil, nil
	}
	return s.FindByID(id)
}

// Delete removes a post and its category associations. Deleting an id
// that matches no post succeeds: the end state is the same either way.
func (s *PostStore) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("delete associations: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete post: %w", err)
	}
	return nil
}

// Counts returns the number of published posts and drafts.
func (s *PostStore) Counts() (published, drafts int, err error) {
	err = s.db.QueryRow(`
		SELECT COUNT(*) FILTER (WHERE published),
		       COUNT(*) FILTER (WHERE NOT published)
		FROM posts
	`).Scan(&published, &drafts)
	if err != nil {
		return 0, 0, fmt.Errorf("count posts: %w", err)
	}
	return published, drafts, nil
}
