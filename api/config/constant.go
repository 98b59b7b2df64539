package config

import (
	"log"
	"strings"
)

const (
	// ModeTest selects the test-mode Stripe secret key.
	ModeTest = "Test"
	// ModeLive selects the live-mode Stripe secret key.
	ModeLive = "Live"

	// DefaultCurrency is used when a charge request carries no currency.
	DefaultCurrency = "usd"

	// ProdDbId is the identifier for the production database
	ProdDbId = "prod-cluster"
)

// CheckNotProdDB aborts immediately if the configured database URL contains ProdDbId.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
}
