// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/store"
	"github.com/dalemkt/dalevote/testutil"
)

func TestAdminListVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewVoteAdminHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Concurso", true, 1000)
	testutil.CreateTestVote(t, conn, item.ID, true, 2000)
	testutil.CreateTestVote(t, conn, item.ID, false, 3000)

	req := testutil.MakeRequest("GET", "/admin/votes", nil, nil)
	w := httptest.NewRecorder()
	handler.ListVotes(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var votes []models.Vote
	testutil.AssertJSON(t, w, &votes)
	if len(votes) != 2 {
		t.Fatalf("Expected 2 votes, got %d", len(votes))
	}
	if votes[0].CreatedAt != 3000 {
		t.Errorf("Expected newest-first order, got %+v", votes)
	}
}

func TestAdminDeleteVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewVoteAdminHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Concurso", true, 1000)
	vote := testutil.CreateTestVote(t, conn, item.ID, true, 2000)

	req := testutil.MakeRequest("DELETE", "/admin/votes/"+vote.ID, nil, nil)
	req.SetPathValue("id", vote.ID)
	w := httptest.NewRecorder()
	handler.DeleteVote(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)
	if got := testutil.CountVotes(t, conn, item.ID); got != 0 {
		t.Errorf("Expected vote removed, got %d", got)
	}

	// Deleting an already-deleted vote is fine
	req = testutil.MakeRequest("DELETE", "/admin/votes/"+vote.ID, nil, nil)
	req.SetPathValue("id", vote.ID)
	w = httptest.NewRecorder()
	handler.DeleteVote(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)
}
