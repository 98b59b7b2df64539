package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration. It is resolved once at startup
// and treated as read-only afterwards.
type Config struct {
	// Mode selects which secret key is used: ModeTest or ModeLive.
	Mode string
	// Per-mode Stripe secret keys. Only the key for the selected mode is required.
	TestSecretKey string
	LiveSecretKey string
	// Currency is the default charge currency when a request does not set one.
	Currency string
	// ChargeFieldsJSON is the raw JSON field map applied to charge results,
	// e.g. {"total": "amount", "cardBrand": {"source": "brand"}}.
	ChargeFieldsJSON string
	// Optional: Postgres DSN for the payment audit log. Recording is disabled
	// when empty.
	DatabaseURL string
	// Server port
	HTTPPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	envVars := []struct {
		name   string
		envVar string
	}{
		{"Mode", "PAYMENT_MODE"},
		{"TestSecretKey", "STRIPE_TEST_SECRET_KEY"},
		{"LiveSecretKey", "STRIPE_LIVE_SECRET_KEY"},
		{"Currency", "PAYMENT_CURRENCY"},
		{"ChargeFieldsJSON", "PAYMENT_CHARGE_FIELDS"},
		{"DatabaseURL", "DATABASE_URL"},
		{"HTTPPort", "PORT"},
	}

	for _, v := range envVars {
		value := os.Getenv(v.envVar)
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.Mode == "" {
		config.Mode = ModeTest
	}
	if config.Mode != ModeTest && config.Mode != ModeLive {
		return nil, fmt.Errorf("invalid PAYMENT_MODE %q: must be %q or %q", config.Mode, ModeTest, ModeLive)
	}
	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	// Fail fast, once, when no secret key is resolvable for the selected mode.
	if _, err := config.SecretKey(); err != nil {
		return nil, err
	}

	return config, nil
}

// SecretKey resolves the Stripe secret key for the configured mode.
func (c *Config) SecretKey() (string, error) {
	switch c.Mode {
	case ModeLive:
		if c.LiveSecretKey == "" {
			return "", fmt.Errorf("no Stripe secret key configured for mode %s: set STRIPE_LIVE_SECRET_KEY", c.Mode)
		}
		return c.LiveSecretKey, nil
	default:
		if c.TestSecretKey == "" {
			return "", fmt.Errorf("no Stripe secret key configured for mode %s: set STRIPE_TEST_SECRET_KEY", c.Mode)
		}
		return c.TestSecretKey, nil
	}
}
