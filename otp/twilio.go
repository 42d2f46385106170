// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusApproved is the only provider status that counts as a verified code.
const StatusApproved = "approved"

var ErrMissingCredentials = errors.New("missing twilio verify credentials")

// SendResult reports the provider's answer to a code-send request.
type SendResult struct {
	Accepted bool
	Status   string // provider status, e.g. "pending"
	Message  string // provider rejection message when not accepted
}

// Verifier sends one-time codes to phone numbers and checks submitted
// codes. Implementations make exactly one provider round trip per call and
// never retry.
type Verifier interface {
	// SendCode initiates an SMS challenge. It causes the provider to
	// dispatch a real SMS and must not be invoked speculatively.
	SendCode(ctx context.Context, phone string) (SendResult, error)
	// CheckCode reports whether the provider approved the phone/code pair.
	CheckCode(ctx context.Context, phone, code string) (bool, error)
}

// ProviderError is a non-2xx answer from the verification provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%d): %s", e.StatusCode, e.Message)
}

// TwilioVerify is a Verifier backed by the Twilio Verify v2 REST API.
type TwilioVerify struct {
	// BaseURL and Client are overridable for tests.
	BaseURL string
	Client  *http.Client

	accountSID string
	authToken  string
	serviceSID string
}

// NewTwilioVerify builds a Verify client. All three credentials are
// required; a missing one is a configuration error.
func NewTwilioVerify(accountSID, authToken, serviceSID string) (*TwilioVerify, error) {
	if accountSID == "" || authToken == "" || serviceSID == "" {
		return nil, ErrMissingCredentials
	}
	return &TwilioVerify{
		BaseURL:    "https://verify.twilio.com",
		Client:     &http.Client{Timeout: 15 * time.Second},
		accountSID: accountSID,
		authToken:  authToken,
		serviceSID: serviceSID,
	}, nil
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SendCode starts an SMS verification for the phone number. Provider
// rejections (malformed number, rate limit, unsupported region) come back
// as Accepted=false with the provider's message; only transport failures
// return an error.
func (t *TwilioVerify) SendCode(ctx context.Context, phone string) (SendResult, error) {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("Channel", "sms")

	resp, err := t.post(ctx, "/v2/Services/"+t.serviceSID+"/Verifications", form)
	if err != nil {
		return SendResult{}, err
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return SendResult{}, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SendResult{Accepted: false, Message: body.Message}, nil
	}

	return SendResult{Accepted: true, Status: body.Status}, nil
}

// CheckCode checks a submitted code. Approved only on the exact "approved"
// status; a mismatched code is a 2xx answer with a different status and
// yields false. Expired or consumed verifications surface as a
// ProviderError.
func (t *TwilioVerify) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("Code", code)

	resp, err := t.post(ctx, "/v2/Services/"+t.serviceSID+"/VerificationCheck", form)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &ProviderError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	return body.Status == StatusApproved, nil
}

func (t *TwilioVerify) post(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	return resp, nil
}
