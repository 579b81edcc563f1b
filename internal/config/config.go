package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server Server
	Sheets Sheets
	Auth   Auth
	Sync   Sync

	// Optional integrations. Empty values disable them.
	DatabaseURL string
	AMQPURL     string
}

// Server holds HTTP server configuration
type Server struct {
	Port int
}

// Sheets holds the published-spreadsheet CSV endpoints. These are public
// URLs, no token involved.
type Sheets struct {
	CampaignsURL  string
	ProductsURL   string
	CreatorsURL   string
	ExclusivesURL string
}

// Auth holds the static admin credentials and token settings
type Auth struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Sync holds background refresh settings
type Sync struct {
	RefreshInterval time.Duration
	SupportEmail    string
}

const defaultCampaignsURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTXwT5WKsZki1qfjygvnKvJhbJDNciveomj5PSYNJ_8ASHz9nx6uLdkANuGo9k29EzuV-kGKMTCmUqC/pub?output=csv"

// Load reads environment variables, falling back to .env when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// No .env is fine, rely on OS environment variables.
	}

	cfg := &Config{
		Server: Server{
			Port: envInt("PORT", 8080),
		},
		Sheets: Sheets{
			CampaignsURL:  envStr("SHEETS_CAMPAIGNS_URL", defaultCampaignsURL),
			ProductsURL:   envStr("SHEETS_PRODUCTS_URL", ""),
			CreatorsURL:   envStr("SHEETS_CREATORS_URL", ""),
			ExclusivesURL: envStr("SHEETS_EXCLUSIVES_URL", ""),
		},
		Auth: Auth{
			AdminUsername: envStr("ADMIN_USERNAME", "admin"),
			AdminPassword: envStr("ADMIN_PASSWORD", "iffert2024"),
			JWTSecret:     envStr("JWT_SECRET", "dev-only-secret"),
			TokenTTL:      envDuration("TOKEN_TTL", 12*time.Hour),
		},
		Sync: Sync{
			RefreshInterval: envDuration("REFRESH_INTERVAL", 5*time.Minute),
			SupportEmail:    envStr("SUPPORT_EMAIL", "hello@iffertmedia.com"),
		},
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AMQPURL:     os.Getenv("AMQP_URL"),
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Server.Port)
	}
	if cfg.Sync.RefreshInterval < time.Second {
		return nil, fmt.Errorf("REFRESH_INTERVAL too small: %s", cfg.Sync.RefreshInterval)
	}

	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
