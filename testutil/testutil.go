// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/dalemkt/dalevote/auth"
	"github.com/dalemkt/dalevote/cliparse"
	"github.com/dalemkt/dalevote/db"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/otp"
)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own named shared-cache database so tests
// stay isolated.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("dalevote_test_%d", dbCounter.Add(1))
	conn, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive for the test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// TestAdminPassword matches GetTestConfig's AdminPasswordHash.
const TestAdminPassword = "letmein"

var testPasswordHash string

// GetTestConfig returns a standard test configuration.
func GetTestConfig() cliparse.Config {
	if testPasswordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testPasswordHash = string(h)
	}
	return cliparse.Config{
		Port:              8266,
		DatabaseURL:       "file:test?mode=memory",
		DatabaseType:      "sqlite",
		JWTSecret:         "test-jwt-secret",
		AdminEmail:        "admin@dalevote.com",
		AdminPasswordHash: testPasswordHash,
		CountryCode:       "55",
	}
}

// CreateTestItem inserts an item and returns it.
func CreateTestItem(t *testing.T, conn *sql.DB, title string, published bool, createdAt int64) models.VotingItem {
	t.Helper()

	id, err := auth.NewRecordID()
	if err != nil {
		t.Fatalf("Failed to generate item id: %v", err)
	}
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}
	item := models.VotingItem{
		ID:          id,
		Title:       title,
		Description: "A test item",
		ImageURL:    "https://example.com/item.jpg",
		IsPublished: published,
		CreatedAt:   createdAt,
	}

	_, err = conn.Exec(`
		INSERT INTO voting_items (id, title, description, image_url, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.Title, item.Description, item.ImageURL, item.IsPublished, item.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return item
}

// CreateTestVote inserts a vote for the item and returns it.
func CreateTestVote(t *testing.T, conn *sql.DB, itemID string, verified bool, createdAt int64) models.Vote {
	t.Helper()

	id, err := auth.NewRecordID()
	if err != nil {
		t.Fatalf("Failed to generate vote id: %v", err)
	}
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}
	vote := models.Vote{
		ID:         id,
		ItemID:     itemID,
		VoterName:  "Maria Silva",
		VoterEmail: "maria@example.com",
		VoterPhone: "+5511999998888",
		IsVerified: verified,
		CreatedAt:  createdAt,
	}

	_, err = conn.Exec(`
		INSERT INTO votes (id, item_id, voter_name, voter_email, voter_phone, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, vote.ID, vote.ItemID, vote.VoterName, vote.VoterEmail, vote.VoterPhone, vote.IsVerified, vote.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return vote
}

// CountVotes returns the number of persisted votes, optionally filtered by
// item.
func CountVotes(t *testing.T, conn *sql.DB, itemID string) int {
	t.Helper()

	var count int
	var err error
	if itemID == "" {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&count)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE item_id = $1`, itemID).Scan(&count)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// CheckedCode records one CheckCode call on a FakeVerifier.
type CheckedCode struct {
	Phone string
	Code  string
}

// FakeVerifier is an in-memory otp.Verifier for workflow and handler
// tests.
type FakeVerifier struct {
	SendAccepted bool
	SendStatus   string
	SendMessage  string
	SendErr      error

	Approved bool
	CheckErr error

	SentTo  []string
	Checked []CheckedCode
}

// NewFakeVerifier returns a verifier that accepts sends and approves
// checks.
func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{SendAccepted: true, SendStatus: "pending", Approved: true}
}

func (f *FakeVerifier) SendCode(ctx context.Context, phone string) (otp.SendResult, error) {
	if f.SendErr != nil {
		return otp.SendResult{}, f.SendErr
	}
	f.SentTo = append(f.SentTo, phone)
	if !f.SendAccepted {
		return otp.SendResult{Accepted: false, Message: f.SendMessage}, nil
	}
	return otp.SendResult{Accepted: true, Status: f.SendStatus}, nil
}

func (f *FakeVerifier) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	if f.CheckErr != nil {
		return false, f.CheckErr
	}
	f.Checked = append(f.Checked, CheckedCode{Phone: phone, Code: code})
	return f.Approved, nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
