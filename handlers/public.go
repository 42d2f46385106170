// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/store"
)

type PublicHandler struct {
	store *store.Store
}

func NewPublicHandler(s *store.Store) *PublicHandler {
	return &PublicHandler{store: s}
}

// ListItems handles GET /items - the home listing. Only published items
// are visible to the public.
func (h *PublicHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	all := h.store.ListItems(r.Context())

	published := []models.VotingItem{}
	for _, it := range all {
		if it.IsPublished {
			published = append(published, it)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, published)
}

// GetItem handles GET /items/{id}. Unpublished items are indistinguishable
// from missing ones.
func (h *PublicHandler) GetItem(w http.ResponseWriter, r *http.Request) {
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
	if !item.IsPublished {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}
