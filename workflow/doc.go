// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package workflow implements the verified-vote submission state machine.

# Steps

	info → form → verification → success

plus a user-driven return edge verification → form ("correct number").
Transitions are driven by user actions and provider results only; nothing
is time-driven.

  - info: display-only; BeginForm advances.
  - form: SubmitForm validates voter identity, normalizes the phone, and
    sends the SMS code. Rejection keeps the session in form.
  - verification: SubmitCode checks the code (minimum 4 characters before a
    provider call is made). Approval persists the vote and advances to
    success. Resend re-sends to the already-normalized number;
    CorrectNumber goes back to form.
  - success: terminal.

# The Core Invariant

A Vote is persisted if and only if the provider approved the code for the
session's phone. Persisted votes always carry IsVerified=true; there is no
pending persisted vote, so an abandoned session leaves no record behind.
The workflow also enforces referential integrity: the voted item must
exist at vote-creation time (the store carries no foreign key).

Nothing prevents the same phone from voting repeatedly on one item; that
de-duplication gap is deliberate and documented, not a guarantee.

# Sessions

Sessions live in an in-process map guarded by a mutex, keyed by a
generated ID. Stale sessions are pruned lazily on Start purely to bound
memory; pruning is unobservable through the API.

# Phone Normalization

NormalizePhone strips non-digits and prepends the configured country
calling code when exactly 10 or 11 digits remain, "+" otherwise. The
heuristic misfiles 10-11 digit foreign numbers; see the function comment.
*/
package workflow
