package app

import (
	"os"
	"strconv"
	"time"

	"github.com/starterhq/accounts/internal/accounts/domain"
)

// DefaultJWTSecret is the insecure local-development fallback used when
// JWT_SECRET is unset. Anything production-shaped must override it.
const DefaultJWTSecret = "my_secret_key"

type Config struct {
	JWTSecret      string                // Signing secret for identity tokens (JWT_SECRET)
	Issuer         string                // Issuer claim for tokens (default: accounts-service)
	PasswordScheme domain.PasswordScheme // Credential scheme: sha1 (legacy default) or argon2id

	DatabaseFile string // Path to the SQLite database file (default: ./accounts.db)
	DatabaseDSN  string // Optional: full DSN; wins over DatabaseFile when set
	StaticDir    string // Optional: single-page client dist dir served at /

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		JWTSecret:           getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		Issuer:              getEnvOrDefault("ACCOUNTS_ISSUER", "accounts-service"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "accounts.db"),
		DatabaseDSN:         os.Getenv("ACCOUNTS_DSN"), // Optional: full DSN overrides DatabaseFile
		StaticDir:           os.Getenv("STATIC_DIR"),   // Optional
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	switch os.Getenv("PASSWORD_SCHEME") {
	case string(domain.SchemeArgon2id):
		cfg.PasswordScheme = domain.SchemeArgon2id
	default:
		cfg.PasswordScheme = domain.SchemeSHA1
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
