// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dalemkt/dalevote/auth"
	"github.com/dalemkt/dalevote/cliparse"
	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
)

type SessionHandler struct {
	cfg cliparse.Config
}

func NewSessionHandler(cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Login handles POST /login - verifies admin credentials and issues a
// session token
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if req.Email != h.cfg.AdminEmail {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login credentials")
		return
	}
	if err := auth.CheckPassword(h.cfg.AdminPasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login credentials")
		return
	}

	token, err := auth.NewSessionToken(req.Email, h.cfg.JWTSecret, time.Now())
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("admin logged in", "email", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// Logout handles POST /logout. Sessions are stateless bearer tokens, so
// logout is a client-side discard; the endpoint exists so the transition
// is explicit.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
