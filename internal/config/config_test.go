package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "chips.csv", cfg.Store.DataFile)
	assert.InDelta(t, 0.18, cfg.Billing.TaxRate, 0.0001)
	assert.Equal(t, "unit", cfg.Billing.DiscountBasis)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_FILE", "/var/lib/chipstock/chips.csv")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("DISCOUNT_BASIS", "total")

	cfg := Load()

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/lib/chipstock/chips.csv", cfg.Store.DataFile)
	assert.InDelta(t, 0.2, cfg.Billing.TaxRate, 0.0001)
	assert.Equal(t, "total", cfg.Billing.DiscountBasis)
}
