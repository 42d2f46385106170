// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dalemkt/dalevote/models"
)

var ErrNotFound = errors.New("record not found")

// Store is the typed record-store client over the voting_items and votes
// collections. Reads degrade gracefully to empty results; writes fail loud.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListItems returns all items, newest first. On read failure it logs and
// returns an empty slice.
func (s *Store) ListItems(ctx context.Context) []models.VotingItem {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, image_url, is_published, created_at
		FROM voting_items
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query items", "error", err)
		return []models.VotingItem{}
	}
	defer rows.Close()

	items := []models.VotingItem{}
	for rows.Next() {
		var it models.VotingItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.ImageURL, &it.IsPublished, &it.CreatedAt); err != nil {
			slog.Error("failed to scan item", "error", err)
			return []models.VotingItem{}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read items", "error", err)
		return []models.VotingItem{}
	}
	return items
}

// GetItem returns a single item by id, or ErrNotFound.
func (s *Store) GetItem(ctx context.Context, id string) (models.VotingItem, error) {
	var it models.VotingItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, image_url, is_published, created_at
		FROM voting_items
		WHERE id = $1
	`, id).Scan(&it.ID, &it.Title, &it.Description, &it.ImageURL, &it.IsPublished, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return models.VotingItem{}, ErrNotFound
	}
	if err != nil {
		return models.VotingItem{}, fmt.Errorf("failed to query item: %w", err)
	}
	return it, nil
}

func (s *Store) CreateItem(ctx context.Context, item models.VotingItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO voting_items (id, title, description, image_url, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.Title, item.Description, item.ImageURL, item.IsPublished, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem writes only the non-nil fields of the update. A no-op update
// returns nil without touching the store. ErrNotFound when no row matches.
func (s *Store) UpdateItem(ctx context.Context, id string, updates models.ItemUpdate) error {
	sets := []string{}
	args := []interface{}{}
	n := 1

	add := func(col string, val interface{}) {
		sets = append(sets, col+" = $"+strconv.Itoa(n))
		args = append(args, val)
		n++
	}
	if updates.Title != nil {
		add("title", *updates.Title)
	}
	if updates.Description != nil {
		add("description", *updates.Description)
	}
	if updates.ImageURL != nil {
		add("image_url", *updates.ImageURL)
	}
	if updates.IsPublished != nil {
		add("is_published", *updates.IsPublished)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE voting_items SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(n)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes the item row. Deleting a missing item is not an error;
// cascade of its votes is the caller's job via DeleteVotesByItem.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM voting_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ListVotes returns all votes, newest first. On read failure it logs and
// returns an empty slice.
func (s *Store) ListVotes(ctx context.Context) []models.Vote {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item_id, voter_name, voter_email, voter_phone, is_verified, created_at
		FROM votes
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		return []models.Vote{}
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.ItemID, &v.VoterName, &v.VoterEmail, &v.VoterPhone, &v.IsVerified, &v.CreatedAt); err != nil {
			slog.Error("failed to scan vote", "error", err)
			return []models.Vote{}
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read votes", "error", err)
		return []models.Vote{}
	}
	return votes
}

func (s *Store) CreateVote(ctx context.Context, vote models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, item_id, voter_name, voter_email, voter_phone, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, vote.ID, vote.ItemID, vote.VoterName, vote.VoterEmail, vote.VoterPhone, vote.IsVerified, vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (s *Store) DeleteVote(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return nil
}

// DeleteVotesByItem removes every vote referencing the item and returns how
// many rows were removed. Idempotent: a second call removes zero.
func (s *Store) DeleteVotesByItem(ctx context.Context, itemID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes for item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes for item: %w", err)
	}
	return affected, nil
}
