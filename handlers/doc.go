// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the DaleVote API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PublicHandler: published-item listing for the home page
  - ItemHandler: administrative item lifecycle (create, update, delete,
    duplicate, toggle-publish)
  - VoteAdminHandler: vote listing and deletion
  - ReportHandler: audit counters and CSV export
  - SessionHandler: admin login/logout
  - OTPHandler: the thin relay in front of the verification provider
  - VotingHandler: the public verified-vote workflow

# Administrative Flows

All /admin routes sit behind middleware.RequireAuth:

	GET    /admin/items                  → ListItems
	POST   /admin/items                  → CreateItem
	PATCH  /admin/items/{id}             → UpdateItem (partial fields)
	DELETE /admin/items/{id}             → DeleteItem (cascades votes)
	POST   /admin/items/{id}/duplicate   → DuplicateItem
	POST   /admin/items/{id}/publish     → TogglePublish
	GET    /admin/votes                  → ListVotes
	DELETE /admin/votes/{id}             → DeleteVote
	GET    /admin/report                 → Report (counters)
	GET    /admin/report.csv             → ReportCSV

The CSV columns are ID, Participante, E-mail, Telefone, Item, Status,
Data; Status is Verificado/Pendente and the download filename is
dalevote_relatorio_<epoch-ms>.csv.

# Voting Flow

	POST /items/{id}/vote          → StartVote (info step)
	POST /vote/{sid}/begin         → BeginForm
	POST /vote/{sid}/form          → SubmitForm (sends SMS code)
	POST /vote/{sid}/resend        → Resend
	POST /vote/{sid}/correct-number → CorrectNumber (back to form)
	POST /vote/{sid}/code          → SubmitCode (records verified vote)

# OTP Relay

	POST /send-otp    {phone}        → {success, status}
	POST /verify-otp  {phone, code}  → {success, valid}

Missing fields are 400, provider or configuration trouble is 500 with no
configuration detail leaked, and non-POST methods are 405 via the router's
method patterns.
*/
package handlers
