// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

// NormalizePhone converts a raw voter-entered phone string into the
// international format the verification provider expects.
//
// All non-digit characters are stripped. A result of 10 or 11 digits is
// treated as a domestic number with area code and no country code, and the
// configured country calling code is prepended. Any other digit count is
// assumed to already include a country code and gets a bare "+" prefix.
//
// This is a heuristic, not a numbering-plan lookup: a legitimate foreign
// number that happens to have 10 or 11 digits ("14155550100") is misfiled
// under the configured country. Known limitation.
func NormalizePhone(raw, countryCode string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) >= 10 && len(digits) <= 11 {
		return "+" + countryCode + string(digits)
	}
	return "+" + string(digits)
}
