package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table DDL. upload_date is stored as the display-formatted string the
// normalizer produces, matching what the search layer reads back.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cid (
		id SERIAL PRIMARY KEY,
		cid TEXT UNIQUE,
		cname TEXT,
		clink TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contents (
		id TEXT PRIMARY KEY,
		title TEXT,
		upload_date TEXT,
		video_url TEXT,
		view_count INTEGER,
		like_count INTEGER,
		duration TEXT,
		channel_category INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS category (
		id TEXT PRIMARY KEY,
		category_title TEXT,
		players TEXT,
		level TEXT,
		channel_brand_category INTEGER,
		FOREIGN KEY (channel_brand_category) REFERENCES cid(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id SERIAL PRIMARY KEY,
		name TEXT,
		email TEXT,
		category TEXT,
		message TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the four tables if they do not exist yet. Order
// matters: category carries a foreign key into cid.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
