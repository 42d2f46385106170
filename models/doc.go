// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: email, password
  - CreateItemRequest: title, description, image_url, is_published
  - SendOTPRequest: phone
  - VerifyOTPRequest: phone, code
  - VoterFormRequest: full_name, email, phone
  - SubmitCodeRequest: code

# Response Types

Types for JSON responses:

  - LoginResponse: token
  - SendOTPResponse: success, status, message
  - VerifyOTPResponse: success, valid, message
  - StartVoteResponse / VoteStepResponse / VoteRecordedResponse: workflow steps
  - ReportResponse: audit counters
  - ErrorResponse: error, message, login_url

# Domain Types

Internal data structures:

  - VotingItem: an item administrators publish for public voting
  - ItemUpdate: partial item fields for updates (nil = untouched)
  - Vote: a phone-verified vote referencing a VotingItem

Timestamps are epoch milliseconds throughout, matching the created_at
columns in the store.
*/
package models
