// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package otp is the gateway client for SMS one-time-code verification.

# Verifier

Two operations, each a single round trip with no local retry:

	result, err := verifier.SendCode(ctx, "+5511999998888")
	approved, err := verifier.CheckCode(ctx, "+5511999998888", "123456")

SendCode has a real-world side effect (the provider dispatches an SMS), so
it is only invoked on explicit user action: form submit and resend.

# Twilio Verify

TwilioVerify implements Verifier over the Verify v2 REST API:

	POST /v2/Services/{sid}/Verifications      To, Channel=sms
	POST /v2/Services/{sid}/VerificationCheck  To, Code

Provider rejections of a send (malformed phone, rate limit, unsupported
region) are data, not errors: Accepted=false with the provider message.
CheckCode approves only the exact "approved" status; mismatched codes are
a normal false, expired or consumed verifications surface as ProviderError.

The code expiry window belongs to the provider; nothing here tracks it.
*/
package otp
