// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/dalemkt/dalevote/cliparse"
	"github.com/dalemkt/dalevote/handlers"
	"github.com/dalemkt/dalevote/middleware"
	"github.com/dalemkt/dalevote/otp"
	"github.com/dalemkt/dalevote/store"
	"github.com/dalemkt/dalevote/workflow"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, verifier otp.Verifier) *http.ServeMux {
	mux := http.NewServeMux()

	recordStore := store.New(db)
	wf := workflow.New(recordStore, verifier, cfg.CountryCode)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(recordStore)
	itemHandler := handlers.NewItemHandler(recordStore)
	voteAdminHandler := handlers.NewVoteAdminHandler(recordStore)
	reportHandler := handlers.NewReportHandler(recordStore)
	sessionHandler := handlers.NewSessionHandler(cfg)
	otpHandler := handlers.NewOTPHandler(verifier)
	votingHandler := handlers.NewVotingHandler(wf)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public surface
	mux.HandleFunc("GET /items", middleware.WithLogging(publicHandler.ListItems))
	mux.HandleFunc("GET /items/{id}", middleware.WithLogging(publicHandler.GetItem))

	// Admin session
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Administrative item and vote management
	mux.HandleFunc("GET /admin/items", admin(itemHandler.ListItems))
	mux.HandleFunc("POST /admin/items", admin(itemHandler.CreateItem))
	mux.HandleFunc("PATCH /admin/items/{id}", admin(itemHandler.UpdateItem))
	mux.HandleFunc("DELETE /admin/items/{id}", admin(itemHandler.DeleteItem))
	mux.HandleFunc("POST /admin/items/{id}/duplicate", admin(itemHandler.DuplicateItem))
	mux.HandleFunc("POST /admin/items/{id}/publish", admin(itemHandler.TogglePublish))
	mux.HandleFunc("GET /admin/votes", admin(voteAdminHandler.ListVotes))
	mux.HandleFunc("DELETE /admin/votes/{id}", admin(voteAdminHandler.DeleteVote))
	mux.HandleFunc("GET /admin/report", admin(reportHandler.Report))
	mux.HandleFunc("GET /admin/report.csv", admin(reportHandler.ReportCSV))

	// OTP relay
	mux.HandleFunc("POST /send-otp", middleware.WithLogging(otpHandler.SendOTP))
	mux.HandleFunc("POST /verify-otp", middleware.WithLogging(otpHandler.VerifyOTP))

	// Public voting workflow
	mux.HandleFunc("POST /items/{id}/vote", middleware.WithLogging(votingHandler.StartVote))
	mux.HandleFunc("POST /vote/{sid}/begin", middleware.WithLogging(votingHandler.BeginForm))
	mux.HandleFunc("POST /vote/{sid}/form", middleware.WithLogging(votingHandler.SubmitForm))
	mux.HandleFunc("POST /vote/{sid}/resend", middleware.WithLogging(votingHandler.Resend))
	mux.HandleFunc("POST /vote/{sid}/correct-number", middleware.WithLogging(votingHandler.CorrectNumber))
	mux.HandleFunc("POST /vote/{sid}/code", middleware.WithLogging(votingHandler.SubmitCode))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("DaleVote API v1"))
	})

	return mux
}
