package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Billing BillingConfig
}

type AppConfig struct {
	Env string
}

type StoreConfig struct {
	DataFile string
}

type BillingConfig struct {
	TaxRate float64
	// DiscountBasis selects the low discount tier's comparison amount:
	// "unit" (gross unit price <= 200) or "total" (gross total <= 1000).
	DiscountBasis string
}

func Load() *Config {
	// A local .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_FILE", "chips.csv")
	viper.SetDefault("TAX_RATE", 0.18)
	viper.SetDefault("DISCOUNT_BASIS", "unit")

	return &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			DataFile: viper.GetString("DATA_FILE"),
		},
		Billing: BillingConfig{
			TaxRate:       viper.GetFloat64("TAX_RATE"),
			DiscountBasis: viper.GetString("DISCOUNT_BASIS"),
		},
	}
}
