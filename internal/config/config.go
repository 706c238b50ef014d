// Package config centralises runtime configuration for the dataset API.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "default_secret_key"

// Config captures runtime configuration values for the API server.
type Config struct {
	HTTPAddress        string
	DatabasePath       string
	DatasetDir         string
	JWTSecret          string
	SignupInviteCode   string   // Empty leaves signup open.
	DefaultRows        int      // Used when a request does not mention rows at all.
	MaxRows            int      // Upper clamp for HTTP requests; 0 disables it.
	RateLimitPerMinute int      // Generation requests allowed per client IP per minute.
	RateLimitBurst     int      // Burst on top of the steady rate.
	CORSAllowOrigins   []string // "*" allows every origin.
}

// Load reads an optional .env file, then environment variables, applying defaults for local dev.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[WARN] config.Load(): failed to read %s: %v", f, err)
		}
	}

	cfg := Config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", ":8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "./weight_loss_datagen.db"),
		DatasetDir:         getEnv("DATASET_DIR", "data/datasets"),
		JWTSecret:          getEnv("JWT_SECRET_KEY", ""),
		SignupInviteCode:   getEnv("SIGNUP_INVITE_CODE", ""),
		DefaultRows:        getIntEnv("DEFAULT_ROWS", 5000),
		MaxRows:            getIntEnv("MAX_ROWS", 50000),
		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 5),
		CORSAllowOrigins:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET_KEY environment variable is not set. Using default key.")
	}
	if cfg.DefaultRows < 1 {
		cfg.DefaultRows = 1
	}
	if cfg.MaxRows < 0 {
		cfg.MaxRows = 0
	}
	return cfg
}

// ClampRows applies the MaxRows ceiling to an already normalized row count.
func (c Config) ClampRows(n int) int {
	if c.MaxRows > 0 && n > c.MaxRows {
		return c.MaxRows
	}
	return n
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSAllowOrigins) == 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("[WARN] config: %s=%q is not an integer, using %d", key, value, fallback)
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
