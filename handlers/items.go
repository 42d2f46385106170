// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dalemkt/dalevote/auth"
	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/store"
)

type ItemHandler struct {
	store *store.Store
}

func NewItemHandler(s *store.Store) *ItemHandler {
	return &ItemHandler{store: s}
}

// ListItems handles GET /admin/items - all items, drafts included
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items := h.store.ListItems(r.Context())
	middleware.JSONResponse(w, http.StatusOK, items)
}

// CreateItem handles POST /admin/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.IsPublished && req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required for published items")
		return
	}

	itemID, err := auth.NewRecordID()
	if err != nil {
		slog.Error("failed to generate item ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	item := models.VotingItem{
		ID:          itemID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := h.store.CreateItem(r.Context(), item); err != nil {
		slog.Error("failed to insert item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	slog.Info("item created", "item_id", item.ID, "published", item.IsPublished)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// UpdateItem handles PATCH /admin/items/{id} - partial field update
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	var updates models.ItemUpdate
	if err := middleware.ParseJSONBody(r, &updates); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if updates.Title != nil && *updates.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title cannot be empty")
		return
	}

	// Publishing requires non-empty display fields after the update
	if updates.IsPublished != nil && *updates.IsPublished {
		item, err := h.store.GetItem(r.Context(), itemID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
				return
			}
			slog.Error("failed to query item", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		title, description := item.Title, item.Description
		if updates.Title != nil {
			title = *updates.Title
		}
		if updates.Description != nil {
			description = *updates.Description
		}
		if title == "" || description == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "published items need a title and description")
			return
		}
	}

	if err := h.store.UpdateItem(r.Context(), itemID, updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to update item", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	item, err := h.store.GetItem(r.Context(), itemID)
	if err != nil {
		// A no-op update skips the store write, so a missing item can
		// surface here first
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to reload item", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	slog.Info("item updated", "item_id", itemID)

	middleware.JSONResponse(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /admin/items/{id}.
// Deletion cascades to all votes referencing the item and is idempotent.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	if err := h.store.DeleteItem(r.Context(), itemID); err != nil {
		slog.Error("failed to delete item", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	deleted, err := h.store.DeleteVotesByItem(r.Context(), itemID)
	if err != nil {
		slog.Error("failed to delete item votes", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item votes")
		return
	}

	slog.Info("item deleted", "item_id", itemID, "deleted_votes", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteItemResponse{
		DeletedVotes: deleted,
	})
}

// DuplicateItem handles POST /admin/items/{id}/duplicate.
// The clone gets a new id, a " (Cópia)" title suffix, an unpublished flag,
// and a created_at strictly greater than the original's.
func (h *ItemHandler) DuplicateItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	orig, err := h.store.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to query item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	newID, err := auth.NewRecordID()
	if err != nil {
		slog.Error("failed to generate item ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to duplicate item")
		return
	}

	createdAt := time.Now().UnixMilli()
	if createdAt <= orig.CreatedAt {
		createdAt = orig.CreatedAt + 1
	}

	clone := models.VotingItem{
		ID:          newID,
		Title:       orig.Title + " (Cópia)",
		Description: orig.Description,
		ImageURL:    orig.ImageURL,
		IsPublished: false,
		CreatedAt:   createdAt,
	}

	if err := h.store.CreateItem(r.Context(), clone); err != nil {
		slog.Error("failed to insert duplicate", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to duplicate item")
		return
	}

	slog.Info("item duplicated", "item_id", itemID, "clone_id", clone.ID)

	middleware.JSONResponse(w, http.StatusCreated, clone)
}

// TogglePublish handles POST /admin/items/{id}/publish - flips the
// visibility flag as a single-field update.
func (h *ItemHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	item, err := h.store.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
			return
		}
		slog.Error("failed to query item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	published := !item.IsPublished
	if err := h.store.UpdateItem(r.Context(), itemID, models.ItemUpdate{IsPublished: &published}); err != nil {
		slog.Error("failed to toggle publish", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to toggle publish")
		return
	}
	item.IsPublished = published

	slog.Info("item publish toggled", "item_id", itemID, "published", published)

	middleware.JSONResponse(w, http.StatusOK, item)
}
