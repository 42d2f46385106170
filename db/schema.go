// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType selects the driver:
// "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite).
func Open(dbType, dbURL string) (*sql.DB, error) {
	switch dbType {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	conn, err := sql.Open(dbType, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// votes carries no foreign key to voting_items: referential integrity is
// enforced by the voting workflow at vote-creation time, and item deletion
// cascades through the store's DeleteVotesByItem.
const schema = `
-- Voting items
CREATE TABLE IF NOT EXISTS voting_items (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    is_published BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_voting_items_published ON voting_items(is_published);
CREATE INDEX IF NOT EXISTS idx_voting_items_created_at ON voting_items(created_at);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    voter_name TEXT NOT NULL,
    voter_email TEXT NOT NULL,
    voter_phone TEXT NOT NULL,
    is_verified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_item_id ON votes(item_id);
CREATE INDEX IF NOT EXISTS idx_votes_created_at ON votes(created_at);
`
