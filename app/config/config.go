package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"postbox/app/validation"
)

// Config holds the runtime configuration, loaded from the environment
// with an optional .env file.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// Backend selects the storage engine: memory, badger, sqlite or
	// postgres.
	Backend string

	// DBPath is the database path (badger, sqlite) or DSN (postgres).
	DBPath string

	// StrictDelete refuses to delete users that still have posts.
	StrictDelete bool

	// Bounds are the field constraints enforced by the validator.
	Bounds validation.Bounds
}

// Load reads the configuration from the environment, falling back to
// the defaults: in-memory storage, strict validation and delete guard.
func Load() Config {
	_ = godotenv.Load() // optionally load environment file

	cfg := Config{
		Addr:         ":8080",
		Backend:      "memory",
		DBPath:       "data/postbox.db",
		StrictDelete: true,
		Bounds:       validation.DefaultBounds(),
	}

	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	cfg.StrictDelete = boolEnv("STRICT_DELETE", cfg.StrictDelete)
	cfg.Bounds.StrictEmail = boolEnv("STRICT_EMAIL", cfg.Bounds.StrictEmail)

	cfg.Bounds.NameMin = intEnv("NAME_MIN_LEN", cfg.Bounds.NameMin)
	cfg.Bounds.NameMax = intEnv("NAME_MAX_LEN", cfg.Bounds.NameMax)
	cfg.Bounds.EmailMax = intEnv("EMAIL_MAX_LEN", cfg.Bounds.EmailMax)
	cfg.Bounds.AgeMax = intEnv("AGE_MAX", cfg.Bounds.AgeMax)
	cfg.Bounds.TitleMin = intEnv("TITLE_MIN_LEN", cfg.Bounds.TitleMin)
	cfg.Bounds.TitleMax = intEnv("TITLE_MAX_LEN", cfg.Bounds.TitleMax)
	cfg.Bounds.ContentMin = intEnv("CONTENT_MIN_LEN", cfg.Bounds.ContentMin)

	return cfg
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
