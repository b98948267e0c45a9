package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Demo   DemoConfig
	Gemini GeminiConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// DemoConfig holds the demo/kiosk behavior knobs.
type DemoConfig struct {
	// CurrentWorkerID selects the worker logged in on the kiosk device.
	CurrentWorkerID string

	// ScanResetDelay is how long the scan confirmation stays on screen
	// before the view returns to the dashboard.
	ScanResetDelay time.Duration

	// QRFallbackFirstSite resolves unrecognized QR payloads to the first
	// configured site instead of reporting them. Demo behavior, off by
	// default.
	QRFallbackFirstSite bool
}

// GeminiConfig holds the generative-AI service configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	resetDelay, err := time.ParseDuration(getEnv("SCAN_RESET_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCAN_RESET_DELAY: %w", err)
	}

	config.Demo = DemoConfig{
		CurrentWorkerID:     getEnv("CURRENT_WORKER_ID", "w2"),
		ScanResetDelay:      resetDelay,
		QRFallbackFirstSite: getEnvBool("QR_FALLBACK_FIRST_SITE", false),
	}

	geminiTimeout, err := time.ParseDuration(getEnv("GEMINI_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: %w", err)
	}

	config.Gemini = GeminiConfig{
		APIKey:  getEnv("GEMINI_API_KEY", ""),
		Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		Timeout: geminiTimeout,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Demo.ScanResetDelay < 0 {
		return fmt.Errorf("SCAN_RESET_DELAY must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
