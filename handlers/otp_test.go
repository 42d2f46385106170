// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/testutil"
)

func TestSendOTP(t *testing.T) {
	fake := testutil.NewFakeVerifier()
	handler := NewOTPHandler(fake)

	req := testutil.MakeRequest("POST", "/send-otp", models.SendOTPRequest{Phone: "+5511999998888"}, nil)
	w := httptest.NewRecorder()
	handler.SendOTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SendOTPResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Status != "pending" {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if len(fake.SentTo) != 1 || fake.SentTo[0] != "+5511999998888" {
		t.Errorf("Expected relay to pass the phone through untouched, got %v", fake.SentTo)
	}
}

func TestSendOTPMissingPhone(t *testing.T) {
	fake := testutil.NewFakeVerifier()
	handler := NewOTPHandler(fake)

	req := testutil.MakeRequest("POST", "/send-otp", models.SendOTPRequest{}, nil)
	w := httptest.NewRecorder()
	handler.SendOTP(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.SendOTPResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success || resp.Message != "Phone number is required" {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if len(fake.SentTo) != 0 {
		t.Error("Validation failure must not reach the provider")
	}
}

func TestSendOTPUnconfigured(t *testing.T) {
	handler := NewOTPHandler(nil)

	req := testutil.MakeRequest("POST", "/send-otp", models.SendOTPRequest{Phone: "+5511999998888"}, nil)
	w := httptest.NewRecorder()
	handler.SendOTP(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.SendOTPResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Server misconfiguration" {
		t.Errorf("Expected generic misconfiguration message, got %q", resp.Message)
	}
}

func TestSendOTPRejected(t *testing.T) {
	fake := testutil.NewFakeVerifier()
	fake.SendAccepted = false
	fake.SendMessage = "Invalid parameter `To`"
	handler := NewOTPHandler(fake)

	req := testutil.MakeRequest("POST", "/send-otp", models.SendOTPRequest{Phone: "bogus"}, nil)
	w := httptest.NewRecorder()
	handler.SendOTP(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.SendOTPResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success || resp.Message != "Invalid parameter `To`" {
		t.Errorf("Expected provider message surfaced, got %+v", resp)
	}
}

func TestVerifyOTP(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
	}{
		{"approved code", true},
		{"rejected code", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeVerifier()
			fake.Approved = tt.approved
			handler := NewOTPHandler(fake)

			body := models.VerifyOTPRequest{Phone: "+5511999998888", Code: "123456"}
			req := testutil.MakeRequest("POST", "/verify-otp", body, nil)
			w := httptest.NewRecorder()
			handler.VerifyOTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.VerifyOTPResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("Expected success=true on a completed check")
			}
			if resp.Valid != tt.approved {
				t.Errorf("Expected valid=%v, got %v", tt.approved, resp.Valid)
			}
		})
	}
}

func TestVerifyOTPMissingFields(t *testing.T) {
	handler := NewOTPHandler(testutil.NewFakeVerifier())

	tests := []struct {
		name string
		body models.VerifyOTPRequest
	}{
		{"missing phone", models.VerifyOTPRequest{Code: "123456"}},
		{"missing code", models.VerifyOTPRequest{Phone: "+5511999998888"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/verify-otp", tt.body, nil)
			w := httptest.NewRecorder()
			handler.VerifyOTP(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestVerifyOTPProviderError(t *testing.T) {
	fake := testutil.NewFakeVerifier()
	fake.CheckErr = errors.New("provider error (404): not found")
	handler := NewOTPHandler(fake)

	body := models.VerifyOTPRequest{Phone: "+5511999998888", Code: "123456"}
	req := testutil.MakeRequest("POST", "/verify-otp", body, nil)
	w := httptest.NewRecorder()
	handler.VerifyOTP(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
