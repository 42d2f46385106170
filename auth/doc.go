// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides record identifiers and admin session handling.

# Record IDs

NewRecordID returns a UUIDv7: time-ordered, so records sort by creation
without a secondary index, and collision-resistant without coordination.

	id, err := auth.NewRecordID()

# Admin Sessions

Login verifies the configured bcrypt hash and issues an HS256 JWT:

	if err := auth.CheckPassword(cfg.AdminPasswordHash, req.Password); err != nil { ... }
	token, err := auth.NewSessionToken(cfg.AdminEmail, cfg.JWTSecret, time.Now())

Guarded routes validate the bearer token per request; there is no
server-side session state, so logout is a client-side token discard.

	email, err := auth.ValidateSessionToken(token, cfg.JWTSecret)

Tokens expire after SessionTTL (24h).
*/
package auth
