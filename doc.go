// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the DaleVote API server.

DaleVote is a voting platform: administrators create and publish voting
items, and the public casts phone-verified votes through an SMS one-time
code flow backed by Twilio Verify.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... ADMIN_EMAIL=... ADMIN_PASSWORD_HASH=... go run .

Or with flags:

	go run . -p 8266 -d "file:dalevote.db" -t sqlite

A .env file in the working directory is honored for development.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string
  - JWT_SECRET: admin session signing secret
  - ADMIN_EMAIL / ADMIN_PASSWORD_HASH: administrator credentials

Optional settings:

  - PORT (-p): server port (default: 8266)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - COUNTRY_CODE: calling code for phone normalization (default: 55)
  - TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN / TWILIO_VERIFY_SERVICE_SID:
    verification provider; without them the OTP relay reports a generic
    misconfiguration

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (items, votes, report, otp, voting, session)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth guard, CORS, logging, JSON helpers
  - models: request/response and domain types
  - store: typed record-store client over voting_items and votes
  - otp: Twilio Verify gateway client
  - workflow: the verified-vote submission state machine
  - auth: session tokens, password check, record IDs
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
