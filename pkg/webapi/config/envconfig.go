package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type EnvConfig struct {
	Port         string   `envconfig:"PORT" default:"8000"`
	BaseURL      string   `envconfig:"BASE_URL" default:"http://localhost:8000"`
	Environment  string   `envconfig:"ENVIRONMENT" default:"development"`
	StorageRoot  string   `envconfig:"STORAGE_ROOT" default:"uploads/artifacts"`
	PublicPrefix string   `envconfig:"PUBLIC_PREFIX" default:"/files/artifacts"`
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`

	// Shared credential pair gating every mutating endpoint. When unset the
	// server boots read-only: all mutation attempts are rejected.
	APIUsername string `envconfig:"API_USERNAME"`
	APIPassword string `envconfig:"API_PASSWORD"`

	// Optional Valkey/Redis cache for the artifact listing.
	CacheAddr     string `envconfig:"CACHE_ADDR"`
	CachePassword string `envconfig:"CACHE_PASSWORD"`
	CacheTTL      int    `envconfig:"CACHE_TTL" default:"30"` // seconds

	// Optional S3-compatible target for artifact archive exports.
	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3Region    string `envconfig:"S3_REGION"`
	S3UseSSL    bool   `envconfig:"S3_USE_SSL" default:"false"`
}

func IsDev() bool {
	return os.Getenv("ENVIRONMENT") != "production"
}

func ValidateEnv() (*EnvConfig, error) {
	if IsDev() {
		if err := godotenv.Load(); err != nil {
			log.Println("ℹ No .env file found")
		} else {
			log.Println("✓ Loaded .env file")
		}
	}

	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var errors []string

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		errors = append(errors, "  ❌ BASE_URL must be a valid URL")
	}

	if !strings.HasPrefix(cfg.PublicPrefix, "/") {
		errors = append(errors, "  ❌ PUBLIC_PREFIX must start with '/'")
	}

	if (cfg.APIUsername == "") != (cfg.APIPassword == "") {
		errors = append(errors, "  ❌ Both API_USERNAME and API_PASSWORD must be set together")
	}

	if cfg.S3Endpoint != "" && (cfg.S3AccessKey == "" || cfg.S3SecretKey == "" || cfg.S3Bucket == "") {
		errors = append(errors, "  ❌ S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET are required when S3_ENDPOINT is set")
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("environment validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return &cfg, nil
}

// Credentials returns the shared credential pair. ok is false when the pair
// is not configured, in which case every authentication attempt must fail.
func (c *EnvConfig) Credentials() (username, password string, ok bool) {
	if c.APIUsername == "" || c.APIPassword == "" {
		return "", "", false
	}
	return c.APIUsername, c.APIPassword, true
}

func (c *EnvConfig) CacheEnabled() bool {
	return c.CacheAddr != ""
}

func (c *EnvConfig) S3Enabled() bool {
	return c.S3Endpoint != ""
}

func MaskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func (c *EnvConfig) Print(fmtr func(string, ...interface{})) {
	fmtr("📋 Configuration:\n")
	fmtr("  Environment: %s\n", c.Environment)
	fmtr("  Port: %s\n", c.Port)
	fmtr("  Base URL: %s\n", c.BaseURL)
	fmtr("  Storage root: %s\n", c.StorageRoot)
	fmtr("  Public prefix: %s\n", c.PublicPrefix)

	if _, _, ok := c.Credentials(); ok {
		fmtr("  API credentials: ✓ Configured (user %s)\n", MaskSecret(c.APIUsername))
	} else {
		fmtr("  API credentials: ✗ Not set (mutating endpoints disabled)\n")
	}

	if c.CacheEnabled() {
		fmtr("  Listing cache: ✓ %s (ttl %ds)\n", c.CacheAddr, c.CacheTTL)
	} else {
		fmtr("  Listing cache: ✗ in-memory\n")
	}

	if c.S3Enabled() {
		fmtr("  Archive target: ✓ %s/%s\n", c.S3Endpoint, c.S3Bucket)
	} else {
		fmtr("  Archive target: ✗ Disabled\n")
	}
}
