// Copyright (c) 2026 Dale! Marketing.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv); real
environment variables win over .env entries.

# Config Fields

  - Port: Server listen port (default: 8266)
  - DatabaseURL: connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - CountryCode: calling code prepended during phone normalization (default: 55)
  - TwilioAccountSID / TwilioAuthToken / TwilioVerifyServiceSID: OTP provider
  - JWTSecret: admin session signing secret (required)
  - AdminEmail / AdminPasswordHash: administrator credentials (required)

# CLI Flags

	-p                    Server port
	-d                    Database URL
	-t                    Database type
	--country-code        Phone normalization calling code
	--jwt-secret          Session signing secret
	--admin-email         Administrator e-mail
	--admin-password-hash Administrator bcrypt hash

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	COUNTRY_CODE        → --country-code
	JWT_SECRET          → --jwt-secret
	ADMIN_EMAIL         → --admin-email
	ADMIN_PASSWORD_HASH → --admin-password-hash

Twilio credentials are env-only:

	TWILIO_ACCOUNT_SID
	TWILIO_AUTH_TOKEN
	TWILIO_VERIFY_SERVICE_SID

CLI flags take precedence over environment variables. Missing Twilio
credentials are not an error at parse time; the OTP relay reports a generic
server misconfiguration when asked to send.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be provided
*/
package cliparse
