// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dalemkt/dalevote/auth"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/otp"
	"github.com/dalemkt/dalevote/store"
)

// Step is one phase of the public voting interaction. Transitions are
// user- or result-driven, never time-driven.
type Step string

const (
	StepInfo         Step = "info"
	StepForm         Step = "form"
	StepVerification Step = "verification"
	StepSuccess      Step = "success"
)

var (
	ErrSessionNotFound     = errors.New("voting session not found")
	ErrItemNotFound        = errors.New("voting item not found")
	ErrWrongStep           = errors.New("action not valid in current step")
	ErrMissingFields       = errors.New("full name, email and phone are required")
	ErrCodeTooShort        = errors.New("verification code too short")
	ErrCodeRejected        = errors.New("verification code rejected")
	ErrSendRejected        = errors.New("sms send rejected")
	ErrProviderUnavailable = errors.New("verification provider unavailable")
)

// minCodeLength gates the submit attempt; the provider defines real validity.
const minCodeLength = 4

// sessionIdleLimit bounds memory held by abandoned sessions. Hitting it is
// not a state transition; an abandoned session simply never persisted
// anything, and the provider owns code expiry.
const sessionIdleLimit = time.Hour

// VoterInfo is the voter-supplied identity collected in the form step.
type VoterInfo struct {
	FullName string
	Email    string
	Phone    string
}

// Session is one voter's progress through the workflow. Phone holds the
// normalized number once the form step has been accepted.
type Session struct {
	ID        string
	ItemID    string
	Step      Step
	Voter     VoterInfo
	touchedAt time.Time
}

// RecordStore is the slice of the record store the workflow needs: item
// lookup for referential integrity and vote persistence.
type RecordStore interface {
	GetItem(ctx context.Context, id string) (models.VotingItem, error)
	CreateVote(ctx context.Context, vote models.Vote) error
}

// Workflow orchestrates phone formatting, OTP send, OTP check, and vote
// persistence. A vote record is created if and only if the provider
// approves the code; there is no pending persisted vote.
type Workflow struct {
	store       RecordStore
	verifier    otp.Verifier
	countryCode string

	mu       sync.Mutex
	sessions map[string]*Session
}

// New builds a Workflow. verifier may be nil when the provider is not
// configured; send and check then fail with ErrProviderUnavailable.
func New(recordStore RecordStore, verifier otp.Verifier, countryCode string) *Workflow {
	return &Workflow{
		store:       recordStore,
		verifier:    verifier,
		countryCode: countryCode,
		sessions:    make(map[string]*Session),
	}
}

// Start opens a session for a published item at the info step.
func (w *Workflow) Start(ctx context.Context, itemID string) (Session, error) {
	item, err := w.store.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrItemNotFound
		}
		return Session{}, err
	}
	if !item.IsPublished {
		return Session{}, ErrItemNotFound
	}

	id, err := auth.NewRecordID()
	if err != nil {
		return Session{}, err
	}

	sess := &Session{
		ID:        id,
		ItemID:    item.ID,
		Step:      StepInfo,
		touchedAt: time.Now(),
	}

	w.mu.Lock()
	w.pruneLocked()
	w.sessions[id] = sess
	w.mu.Unlock()

	return *sess, nil
}

// BeginForm moves a session from the info step to the form step.
func (w *Workflow) BeginForm(sessionID string) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, err := w.sessionLocked(sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.Step != StepInfo {
		return Session{}, ErrWrongStep
	}
	sess.Step = StepForm
	return *sess, nil
}

// SubmitForm validates the voter info, normalizes the phone number, and
// asks the provider to send a code. On acceptance the session advances to
// the verification step with the normalized phone retained; on rejection
// it stays in the form step and nothing is persisted.
func (w *Workflow) SubmitForm(ctx context.Context, sessionID string, info VoterInfo) (Session, error) {
	w.mu.Lock()
	sess, err := w.sessionLocked(sessionID)
	if err != nil {
		w.mu.Unlock()
		return Session{}, err
	}
	if sess.Step != StepForm {
		w.mu.Unlock()
		return Session{}, ErrWrongStep
	}
	w.mu.Unlock()

	// Validation failures never reach the provider
	if info.FullName == "" || info.Email == "" || info.Phone == "" {
		return Session{}, ErrMissingFields
	}

	normalized := NormalizePhone(info.Phone, w.countryCode)

	if err := w.sendCode(ctx, normalized); err != nil {
		return Session{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	sess, err = w.sessionLocked(sessionID)
	if err != nil {
		return Session{}, err
	}
	sess.Voter = info
	sess.Voter.Phone = normalized
	sess.Step = StepVerification

	slog.Info("verification code sent", "session_id", sess.ID, "item_id", sess.ItemID)
	return *sess, nil
}

// Resend re-triggers the code send with the already-normalized phone.
// Only valid in the verification step.
func (w *Workflow) Resend(ctx context.Context, sessionID string) (Session, error) {
	w.mu.Lock()
	sess, err := w.sessionLocked(sessionID)
	if err != nil {
		w.mu.Unlock()
		return Session{}, err
	}
	if sess.Step != StepVerification {
		w.mu.Unlock()
		return Session{}, ErrWrongStep
	}
	phone := sess.Voter.Phone
	w.mu.Unlock()

	if err := w.sendCode(ctx, phone); err != nil {
		return Session{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	sess, err = w.sessionLocked(sessionID)
	if err != nil {
		return Session{}, err
	}
	slog.Info("verification code resent", "session_id", sess.ID)
	return *sess, nil
}

// CorrectNumber returns a verification-step session to the form step,
// discarding the pending code state.
func (w *Workflow) CorrectNumber(sessionID string) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, err := w.sessionLocked(sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.Step != StepVerification {
		return Session{}, ErrWrongStep
	}
	sess.Step = StepForm
	return *sess, nil
}

// SubmitCode checks the submitted code with the provider. Approval builds
// and persists a verified vote and moves the session to the success step.
// Any other outcome leaves the session in the verification step with
// nothing persisted.
func (w *Workflow) SubmitCode(ctx context.Context, sessionID, code string) (models.Vote, Session, error) {
	w.mu.Lock()
	sess, err := w.sessionLocked(sessionID)
	if err != nil {
		w.mu.Unlock()
		return models.Vote{}, Session{}, err
	}
	if sess.Step != StepVerification {
		w.mu.Unlock()
		return models.Vote{}, Session{}, ErrWrongStep
	}
	itemID := sess.ItemID
	voter := sess.Voter
	w.mu.Unlock()

	if len(code) < minCodeLength {
		return models.Vote{}, Session{}, ErrCodeTooShort
	}

	if w.verifier == nil {
		return models.Vote{}, Session{}, ErrProviderUnavailable
	}
	approved, err := w.verifier.CheckCode(ctx, voter.Phone, code)
	if err != nil {
		return models.Vote{}, Session{}, fmt.Errorf("code check failed: %w", err)
	}
	if !approved {
		return models.Vote{}, Session{}, ErrCodeRejected
	}

	// Referential integrity: the item must still exist at vote-creation time
	if _, err := w.store.GetItem(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Vote{}, Session{}, ErrItemNotFound
		}
		return models.Vote{}, Session{}, err
	}

	voteID, err := auth.NewRecordID()
	if err != nil {
		return models.Vote{}, Session{}, err
	}
	vote := models.Vote{
		ID:         voteID,
		ItemID:     itemID,
		VoterName:  voter.FullName,
		VoterEmail: voter.Email,
		VoterPhone: voter.Phone,
		IsVerified: true,
		CreatedAt:  time.Now().UnixMilli(),
	}

	if err := w.store.CreateVote(ctx, vote); err != nil {
		// Write failed loud: session stays in verification, nothing persisted
		return models.Vote{}, Session{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	sess, err = w.sessionLocked(sessionID)
	if err != nil {
		return vote, Session{}, err
	}
	sess.Step = StepSuccess

	slog.Info("vote recorded", "vote_id", vote.ID, "item_id", vote.ItemID, "session_id", sess.ID)
	return vote, *sess, nil
}

func (w *Workflow) sendCode(ctx context.Context, phone string) error {
	if w.verifier == nil {
		return ErrProviderUnavailable
	}
	res, err := w.verifier.SendCode(ctx, phone)
	if err != nil {
		return fmt.Errorf("code send failed: %w", err)
	}
	if !res.Accepted {
		if res.Message == "" {
			return ErrSendRejected
		}
		return fmt.Errorf("%w: %s", ErrSendRejected, res.Message)
	}
	return nil
}

// sessionLocked fetches and touches a session. Caller holds w.mu.
func (w *Workflow) sessionLocked(sessionID string) (*Session, error) {
	sess, ok := w.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.touchedAt = time.Now()
	return sess, nil
}

// pruneLocked drops sessions idle past the limit. Caller holds w.mu.
func (w *Workflow) pruneLocked() {
	cutoff := time.Now().Add(-sessionIdleLimit)
	for id, sess := range w.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(w.sessions, id)
		}
	}
}
