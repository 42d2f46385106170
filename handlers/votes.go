// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/store"
)

type VoteAdminHandler struct {
	store *store.Store
}

func NewVoteAdminHandler(s *store.Store) *VoteAdminHandler {
	return &VoteAdminHandler{store: s}
}

// ListVotes handles GET /admin/votes - all votes, newest first
func (h *VoteAdminHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes := h.store.ListVotes(r.Context())
	middleware.JSONResponse(w, http.StatusOK, votes)
}

// DeleteVote handles DELETE /admin/votes/{id}
func (h *VoteAdminHandler) DeleteVote(w http.ResponseWriter, r *http.Request) {
	voteID := r.PathValue("id")
	if voteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	if err := h.store.DeleteVote(r.Context(), voteID); err != nil {
		slog.Error("failed to delete vote", "error", err, "vote_id", voteID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete vote")
		return
	}

	slog.Info("vote deleted", "vote_id", voteID)

	w.WriteHeader(http.StatusNoContent)
}
