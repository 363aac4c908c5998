package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: two
// categories and a pair of posts (one published, one draft). It is a
// no-op if any posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var designID, engineeringID int64
	err := db.QueryRow(`
		INSERT INTO categories (name, slug, description)
		VALUES ('Design', 'design', 'Visual design and typography')
		RETURNING id
	`).Scan(&designID)
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}
	err = db.QueryRow(`
		INSERT INTO categories (name, slug, description)
		VALUES ('Engineering', 'engineering', 'Under the hood')
		RETURNING id
	`).Scan(&engineeringID)
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	var welcomeID, draftID int64
	err = db.QueryRow(`
		INSERT INTO posts (title, content, slug, published)
		VALUES ('Welcome to the blog', '# Welcome

This is the first post. It is written in **markdown** and stored verbatim.', 'welcome-to-the-blog', TRUE)
		RETURNING id
	`).Scan(&welcomeID)
	if err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}
	err = db.QueryRow(`
		INSERT INTO posts (title, content, slug, published)
		VALUES ('Work in progress', 'Still drafting this one.', 'work-in-progress', FALSE)
		RETURNING id
	`).Scan(&draftID)
	if err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}

	if _, err := db.Exec(`
		INSERT INTO post_categories (post_id, category_id)
		VALUES ($1, $2), ($3, $4)
		ON CONFLICT DO NOTHING
	`, welcomeID, designID, draftID, engineeringID); err != nil {
		return fmt.Errorf("seed insert associations: %w", err)
	}

	slog.Info("database seeded with sample posts and categories")
	return nil
}
