package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// StorageMode selects the persistence backend: "postgres" or "file".
	StorageMode string
	DataFile    string

	IMAPHost string
	IMAPPort string
	IMAPUser string
	IMAPPass string

	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	AdminKey          string

	// AdminAuthMode selects how admin endpoints are authenticated:
	// "session" (Bearer token checked against the session store) or
	// "static" (X-Admin-Key header compared against AdminKey).
	AdminAuthMode   string
	SessionDuration time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionDuration := 24 * time.Hour
	if exp := os.Getenv("SESSION_DURATION"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionDuration = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		StorageMode:       getEnv("STORAGE_MODE", "postgres"),
		DataFile:          getEnv("DATA_FILE", "data/database.json"),
		IMAPHost:          getEnv("IMAP_HOST", "imap.gmail.com"),
		IMAPPort:          getEnv("IMAP_PORT", "993"),
		IMAPUser:          getEnv("IMAP_USER", ""),
		IMAPPass:          getEnv("IMAP_PASS", ""),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminKey:          getEnv("ADMIN_KEY", ""),
		AdminAuthMode:     getEnv("ADMIN_AUTH_MODE", "session"),
		SessionDuration:   sessionDuration,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
