// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/workflow"
)

// VotingHandler exposes the verified-vote submission workflow.
type VotingHandler struct {
	wf *workflow.Workflow
}

func NewVotingHandler(wf *workflow.Workflow) *VotingHandler {
	return &VotingHandler{wf: wf}
}

// StartVote handles POST /items/{id}/vote - opens a workflow session
func (h *VotingHandler) StartVote(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	sess, err := h.wf.Start(r.Context(), itemID)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.StartVoteResponse{
		SessionID: sess.ID,
		Step:      string(sess.Step),
	})
}

// BeginForm handles POST /vote/{sid}/begin
func (h *VotingHandler) BeginForm(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wf.BeginForm(r.PathValue("sid"))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeStep(w, sess)
}

// SubmitForm handles POST /vote/{sid}/form - voter identity plus phone;
// triggers the SMS code send
func (h *VotingHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req models.VoterFormRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := h.wf.SubmitForm(r.Context(), r.PathValue("sid"), workflow.VoterInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeStep(w, sess)
}

// Resend handles POST /vote/{sid}/resend
func (h *VotingHandler) Resend(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wf.Resend(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeStep(w, sess)
}

// CorrectNumber handles POST /vote/{sid}/correct-number - back to the form
func (h *VotingHandler) CorrectNumber(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wf.CorrectNumber(r.PathValue("sid"))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeStep(w, sess)
}

// SubmitCode handles POST /vote/{sid}/code - checks the code and, on
// approval, records the verified vote
func (h *VotingHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitCodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote, sess, err := h.wf.SubmitCode(r.Context(), r.PathValue("sid"), req.Code)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteRecordedResponse{
		VoteID: vote.ID,
		Step:   string(sess.Step),
	})
}

func writeStep(w http.ResponseWriter, sess workflow.Session) {
	middleware.JSONResponse(w, http.StatusOK, models.VoteStepResponse{
		SessionID: sess.ID,
		Step:      string(sess.Step),
		Phone:     sess.Voter.Phone,
	})
}

// writeWorkflowError maps workflow errors onto the relay's HTTP taxonomy:
// validation 400, missing 404, wrong step 409, rejected code 400, provider
// rejection 502, misconfiguration 500 with no detail.
func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Voting session not found")
	case errors.Is(err, workflow.ErrItemNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, workflow.ErrWrongStep):
		middleware.ErrorResponse(w, http.StatusConflict, "Action not valid in current step")
	case errors.Is(err, workflow.ErrMissingFields):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Full name, email and phone are required")
	case errors.Is(err, workflow.ErrCodeTooShort):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Verification code too short")
	case errors.Is(err, workflow.ErrCodeRejected):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid verification code")
	case errors.Is(err, workflow.ErrSendRejected):
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, workflow.ErrProviderUnavailable):
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server misconfiguration")
	default:
		slog.Error("workflow step failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process vote")
	}
}
