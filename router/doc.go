// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ method routing.

NewRouter wires the store, workflow, and handlers and returns the mux:

	mux := router.NewRouter(db, cfg, verifier)

Every route runs behind request logging. The /admin subtree additionally
runs behind middleware.RequireAuth, so unauthenticated access is redirected
to the login entry point with the requested path preserved.

Method patterns give non-matching verbs a 405 for free, which the OTP
relay contract relies on (POST-only /send-otp and /verify-otp).
*/
package router
