// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/models"
	"github.com/dalemkt/dalevote/store"
)

type ReportHandler struct {
	store *store.Store
}

func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// loadAll fetches items and votes concurrently; the two reads have no
// ordering dependency.
func (h *ReportHandler) loadAll(r *http.Request) ([]models.VotingItem, []models.Vote) {
	var (
		wg    sync.WaitGroup
		items []models.VotingItem
		votes []models.Vote
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items = h.store.ListItems(r.Context())
	}()
	go func() {
		defer wg.Done()
		votes = h.store.ListVotes(r.Context())
	}()
	wg.Wait()
	return items, votes
}

// Report handles GET /admin/report - audit counters
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	items, votes := h.loadAll(r)

	verified := 0
	for _, v := range votes {
		if v.IsVerified {
			verified++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReportResponse{
		TotalVotes:    len(votes),
		VerifiedVotes: verified,
		PendingVotes:  len(votes) - verified,
		ItemsCount:    len(items),
	})
}

// ReportCSV handles GET /admin/report.csv - the downloadable audit report
func (h *ReportHandler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	items, votes := h.loadAll(r)

	body, err := buildReportCSV(items, votes)
	if err != nil {
		slog.Error("failed to build report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	filename := "dalevote_relatorio_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

// buildReportCSV renders the audit rows. Votes whose item has been deleted
// keep their row with the "Removido" placeholder title.
func buildReportCSV(items []models.VotingItem, votes []models.Vote) ([]byte, error) {
	titles := make(map[string]string, len(items))
	for _, it := range items {
		titles[it.ID] = it.Title
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"ID", "Participante", "E-mail", "Telefone", "Item", "Status", "Data"}); err != nil {
		return nil, err
	}
	for _, v := range votes {
		title, ok := titles[v.ItemID]
		if !ok {
			title = "Removido"
		}
		status := "Pendente"
		if v.IsVerified {
			status = "Verificado"
		}
		row := []string{
			v.ID,
			v.VoterName,
			v.VoterEmail,
			v.VoterPhone,
			title,
			status,
			time.UnixMilli(v.CreatedAt).Format("02/01/2006 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
