// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/otp"
)

// OTPHandler is the minimal relay in front of the verification provider.
// verifier is nil when provider credentials are not configured; the relay
// then answers with a generic misconfiguration error and no detail.
type OTPHandler struct {
	verifier otp.Verifier
}

func NewOTPHandler(verifier otp.Verifier) *OTPHandler {
	return &OTPHandler{verifier: verifier}
}

// SendOTP handles POST /send-otp
func (h *OTPHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.SendOTPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SendOTPResponse{
			Success: false,
			Message: "Phone number is required",
		})
		return
	}
	if req.Phone == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SendOTPResponse{
			Success: false,
			Message: "Phone number is required",
		})
		return
	}

	if h.verifier == nil {
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SendOTPResponse{
			Success: false,
			Message: "Server misconfiguration",
		})
		return
	}

	result, err := h.verifier.SendCode(r.Context(), req.Phone)
	if err != nil {
		slog.Error("otp send failed", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SendOTPResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if !result.Accepted {
		slog.Warn("otp send rejected", "message", result.Message)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SendOTPResponse{
			Success: false,
			Message: result.Message,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SendOTPResponse{
		Success: true,
		Status:  result.Status,
	})
}

// VerifyOTP handles POST /verify-otp
func (h *OTPHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.VerifyOTPResponse{
			Success: false,
			Message: "Phone and code are required",
		})
		return
	}
	if req.Phone == "" || req.Code == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.VerifyOTPResponse{
			Success: false,
			Message: "Phone and code are required",
		})
		return
	}

	if h.verifier == nil {
		middleware.JSONResponse(w, http.StatusInternalServerError, models.VerifyOTPResponse{
			Success: false,
			Message: "Server misconfiguration",
		})
		return
	}

	approved, err := h.verifier.CheckCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		slog.Error("otp check failed", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.VerifyOTPResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerifyOTPResponse{
		Success: true,
		Valid:   approved,
	})
}
