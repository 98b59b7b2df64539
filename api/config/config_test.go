package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPaymentEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"PAYMENT_MODE", "STRIPE_TEST_SECRET_KEY", "STRIPE_LIVE_SECRET_KEY",
		"PAYMENT_CURRENCY", "PAYMENT_CHARGE_FIELDS", "DATABASE_URL", "PORT",
	} {
		t.Setenv(v, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearPaymentEnv(t)
	t.Setenv("STRIPE_TEST_SECRET_KEY", "sk_test_123")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeTest, cfg.Mode)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.ChargeFieldsJSON)
	assert.Empty(t, cfg.DatabaseURL)

	key, err := cfg.SecretKey()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", key)
}

func TestLoadConfig_LiveModeRequiresLiveKey(t *testing.T) {
	clearPaymentEnv(t)
	t.Setenv("PAYMENT_MODE", ModeLive)
	t.Setenv("STRIPE_TEST_SECRET_KEY", "sk_test_123")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_LIVE_SECRET_KEY")
}

func TestLoadConfig_LiveModeResolvesLiveKey(t *testing.T) {
	clearPaymentEnv(t)
	t.Setenv("PAYMENT_MODE", ModeLive)
	t.Setenv("STRIPE_LIVE_SECRET_KEY", "sk_live_456")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	key, err := cfg.SecretKey()
	require.NoError(t, err)
	assert.Equal(t, "sk_live_456", key)
}

func TestLoadConfig_MissingTestKeyFailsFast(t *testing.T) {
	clearPaymentEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_TEST_SECRET_KEY")
}

func TestLoadConfig_RejectsUnknownMode(t *testing.T) {
	clearPaymentEnv(t)
	t.Setenv("PAYMENT_MODE", "Sandbox")
	t.Setenv("STRIPE_TEST_SECRET_KEY", "sk_test_123")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYMENT_MODE")
}

func TestLoadConfig_ReadsOverrides(t *testing.T) {
	clearPaymentEnv(t)
	t.Setenv("STRIPE_TEST_SECRET_KEY", "sk_test_123")
	t.Setenv("PAYMENT_CURRENCY", "eur")
	t.Setenv("PAYMENT_CHARGE_FIELDS", `{"total":"amount"}`)
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "eur", cfg.Currency)
	assert.Equal(t, `{"total":"amount"}`, cfg.ChargeFieldsJSON)
	assert.Equal(t, "9090", cfg.HTTPPort)
}
