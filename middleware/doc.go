// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - RequireAuth: bearer-token guard for administrative routes
  - CORS: cross-origin headers and preflight handling

RequireAuth answers unauthenticated requests with 401 and a login_url of
the form /login?from=<requested-path>; after login the client returns to
the originally requested destination. The authenticated email is exposed
to downstream handlers through the X-Auth-Email request header.

# Helpers

  - JSONResponse: write a JSON body with status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode the request body
*/
package middleware
