// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/store"
	"github.com/dalemkt/dalevote/testutil"
)

func TestCreateItem(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	body := models.CreateItemRequest{
		Title:       "Melhor Pastel 2026",
		Description: "Vote no melhor pastel da feira",
		ImageURL:    "https://cdn.dalemkt.com.br/pastel.jpg",
		IsPublished: true,
	}
	req := testutil.MakeRequest("POST", "/admin/items", body, nil)
	w := httptest.NewRecorder()
	handler.CreateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var item models.VotingItem
	testutil.AssertJSON(t, w, &item)
	if item.ID == "" {
		t.Error("Expected generated item ID")
	}
	if item.Title != body.Title || !item.IsPublished {
		t.Errorf("Unexpected item: %+v", item)
	}
	if item.CreatedAt == 0 {
		t.Error("Expected epoch-millisecond created_at")
	}
}

func TestCreateItemValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	tests := []struct {
		name string
		body models.CreateItemRequest
	}{
		{"missing title", models.CreateItemRequest{Description: "desc"}},
		{"published without description", models.CreateItemRequest{Title: "t", IsPublished: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/admin/items", tt.body, nil)
			w := httptest.NewRecorder()
			handler.CreateItem(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestCreateItemDraftWithoutDescription(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	req := testutil.MakeRequest("POST", "/admin/items", models.CreateItemRequest{Title: "Rascunho"}, nil)
	w := httptest.NewRecorder()
	handler.CreateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestListItemsIncludesDrafts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	testutil.CreateTestItem(t, conn, "Published", true, 1000)
	testutil.CreateTestItem(t, conn, "Draft", false, 2000)

	req := testutil.MakeRequest("GET", "/admin/items", nil, nil)
	w := httptest.NewRecorder()
	handler.ListItems(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var items []models.VotingItem
	testutil.AssertJSON(t, w, &items)
	if len(items) != 2 {
		t.Errorf("Expected drafts in admin listing, got %d items", len(items))
	}
}

func TestUpdateItem(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Old Title", false, 1000)

	req := testutil.MakeRequest("PATCH", "/admin/items/"+item.ID, map[string]interface{}{"title": "New Title"}, nil)
	req.SetPathValue("id", item.ID)
	w := httptest.NewRecorder()
	handler.UpdateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.VotingItem
	testutil.AssertJSON(t, w, &updated)
	if updated.Title != "New Title" {
		t.Errorf("Expected updated title, got %s", updated.Title)
	}
	if updated.Description != item.Description {
		t.Error("Untouched fields should survive a partial update")
	}
}

func TestUpdateItemRejections(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Title", false, 1000)

	tests := []struct {
		name     string
		id       string
		body     map[string]interface{}
		expected int
	}{
		{"empty title", item.ID, map[string]interface{}{"title": ""}, http.StatusBadRequest},
		{"missing item", "no-such-id", map[string]interface{}{"title": "x"}, http.StatusNotFound},
		{"empty update on missing item", "no-such-id", map[string]interface{}{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PATCH", "/admin/items/"+tt.id, tt.body, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			handler.UpdateItem(w, req)
			testutil.AssertStatus(t, w, tt.expected)
		})
	}
}

func TestUpdateItemEmptyBody(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Unchanged", true, 1000)

	req := testutil.MakeRequest("PATCH", "/admin/items/"+item.ID, map[string]interface{}{}, nil)
	req.SetPathValue("id", item.ID)
	w := httptest.NewRecorder()
	handler.UpdateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.VotingItem
	testutil.AssertJSON(t, w, &got)
	if got.Title != item.Title || got.IsPublished != item.IsPublished || got.CreatedAt != item.CreatedAt {
		t.Errorf("Empty update must not change the item: %+v", got)
	}
}

func TestUpdateItemPublishNeedsDescription(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))
	s := store.New(conn)

	item := testutil.CreateTestItem(t, conn, "Title", false, 1000)
	empty := ""
	if err := s.UpdateItem(context.Background(), item.ID, models.ItemUpdate{Description: &empty}); err != nil {
		t.Fatalf("Failed to blank description: %v", err)
	}

	req := testutil.MakeRequest("PATCH", "/admin/items/"+item.ID, map[string]interface{}{"is_published": true}, nil)
	req.SetPathValue("id", item.ID)
	w := httptest.NewRecorder()
	handler.UpdateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteItemCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Doomed", true, 1000)
	testutil.CreateTestVote(t, conn, item.ID, true, 2000)
	testutil.CreateTestVote(t, conn, item.ID, true, 2001)

	req := testutil.MakeRequest("DELETE", "/admin/items/"+item.ID, nil, nil)
	req.SetPathValue("id", item.ID)
	w := httptest.NewRecorder()
	handler.DeleteItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteItemResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.DeletedVotes != 2 {
		t.Errorf("Expected 2 deleted votes reported, got %d", resp.DeletedVotes)
	}
	if got := testutil.CountVotes(t, conn, item.ID); got != 0 {
		t.Errorf("Expected no votes left, got %d", got)
	}

	// Idempotent: a repeat delete succeeds and reports zero
	req = testutil.MakeRequest("DELETE", "/admin/items/"+item.ID, nil, nil)
	req.SetPathValue("id", item.ID)
	w = httptest.NewRecorder()
	handler.DeleteItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.DeletedVotes != 0 {
		t.Errorf("Expected 0 deleted votes on repeat, got %d", resp.DeletedVotes)
	}
}

func TestDuplicateItem(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	orig := testutil.CreateTestItem(t, conn, "Melhor Pastel", true, 1000)
	testutil.CreateTestVote(t, conn, orig.ID, true, 2000)

	req := testutil.MakeRequest("POST", "/admin/items/"+orig.ID+"/duplicate", nil, nil)
	req.SetPathValue("id", orig.ID)
	w := httptest.NewRecorder()
	handler.DuplicateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var clone models.VotingItem
	testutil.AssertJSON(t, w, &clone)
	if clone.ID == orig.ID {
		t.Error("Clone must get a new ID")
	}
	if clone.Title != "Melhor Pastel (Cópia)" {
		t.Errorf("Unexpected clone title: %s", clone.Title)
	}
	if clone.IsPublished {
		t.Error("Clone must start unpublished")
	}
	if clone.CreatedAt <= orig.CreatedAt {
		t.Errorf("Clone created_at %d not greater than original %d", clone.CreatedAt, orig.CreatedAt)
	}
	if clone.Description != orig.Description || clone.ImageURL != orig.ImageURL {
		t.Errorf("Clone should carry description and image: %+v", clone)
	}

	// Votes stay with the original
	if got := testutil.CountVotes(t, conn, clone.ID); got != 0 {
		t.Errorf("Expected no votes on clone, got %d", got)
	}
	if got := testutil.CountVotes(t, conn, orig.ID); got != 1 {
		t.Errorf("Expected original vote untouched, got %d", got)
	}
}

func TestDuplicateItemNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	req := testutil.MakeRequest("POST", "/admin/items/no-such-id/duplicate", nil, nil)
	req.SetPathValue("id", "no-such-id")
	w := httptest.NewRecorder()
	handler.DuplicateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestTogglePublishRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	item := testutil.CreateTestItem(t, conn, "Flip Me", false, 1000)

	toggle := func() models.VotingItem {
		req := testutil.MakeRequest("POST", "/admin/items/"+item.ID+"/publish", nil, nil)
		req.SetPathValue("id", item.ID)
		w := httptest.NewRecorder()
		handler.TogglePublish(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var got models.VotingItem
		testutil.AssertJSON(t, w, &got)
		return got
	}

	first := toggle()
	if !first.IsPublished {
		t.Error("Expected first toggle to publish")
	}
	second := toggle()
	if second.IsPublished {
		t.Error("Expected second toggle to unpublish")
	}
	if second.Title != item.Title || second.CreatedAt != item.CreatedAt {
		t.Errorf("Toggle must not rewrite other fields: %+v", second)
	}
}

func TestUpdateItemInvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewItemHandler(store.New(conn))

	req := httptest.NewRequest("PATCH", "/admin/items/x", strings.NewReader("{not json"))
	req.SetPathValue("id", "x")
	w := httptest.NewRecorder()
	handler.UpdateItem(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
