// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the typed record-store client over the two collections,
voting_items and votes.

# Contract

	ListItems, GetItem, CreateItem, UpdateItem, DeleteItem
	ListVotes, CreateVote, DeleteVote, DeleteVotesByItem

List reads return newest-first by created_at and degrade gracefully: on any
read failure they log and return an empty slice. GetItem is the exception —
the workflow needs a hard answer for referential integrity, so it returns
ErrNotFound.

Writes fail loud: errors propagate to the caller and abort the enclosing
action, leaving prior persisted state unchanged.

# Field Translation

The store's only internal logic is translating between the snake_case
storage columns (image_url, is_published, voter_phone, ...) and the Go
structs in models. UpdateItem writes just the non-nil fields of an
ItemUpdate, so a publish toggle stays a single-column write.
*/
package store
