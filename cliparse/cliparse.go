package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Twilio Verify credentials. Optional: when absent the OTP relay
	// answers with a generic misconfiguration error.
	TwilioAccountSID       string
	TwilioAuthToken        string
	TwilioVerifyServiceSID string

	// Admin session secrets
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash

	// Country calling code prepended to 10-11 digit phone numbers
	CountryCode string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("dalevote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CountryCode, "country-code", "", "Country calling code for phone normalization")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Admin session signing secret (prefer env)")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Administrator e-mail (prefer env)")
	fs.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", "", "Administrator bcrypt password hash (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8266 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.CountryCode == "" {
		cfg.CountryCode = os.Getenv("COUNTRY_CODE")
		if cfg.CountryCode == "" {
			cfg.CountryCode = "55"
		}
	}

	// Twilio credentials are env-only; never passed on the command line
	cfg.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.TwilioVerifyServiceSID = os.Getenv("TWILIO_VERIFY_SERVICE_SID")

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		return Config{}, errors.New("ADMIN_EMAIL required")
	}

	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH required")
	}

	return cfg, nil
}
