// Package config provides the static configuration surface for the
// pricing core. Every policy knob has an explicit default so a partial
// config file never silently disables a limit.
package config

import (
	"encoding/json"
	"os"

	"github.com/light-bringer/cleanprice-service/internal/logging"
)

// Config is the application configuration, read once at startup.
type Config struct {
	// SpannerDB is the fully-qualified Spanner database path.
	SpannerDB string `json:"spanner_db"`

	// Pricing contains the dynamic pricing policy knobs.
	Pricing PricingConfig `json:"pricing"`

	// HourCredit contains the hour-credit billing knobs.
	HourCredit HourCreditConfig `json:"hour_credit"`

	// Logging contains logging configuration.
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains the dynamic pricing policy knobs.
type PricingConfig struct {
	// MinimumPriceCents is the price floor. No quote goes below this,
	// regardless of discounts. Default 8000 (80.00).
	MinimumPriceCents int64 `json:"minimum_price_cents"`

	// ServiceFeePercent is the fee added after discounts. Default 5.
	ServiceFeePercent int64 `json:"service_fee_percent"`

	// MaximumDiscountPercent caps combined loyalty plus additive
	// discounts, measured against the pre-multiplier subtotal.
	// Default 30.
	MaximumDiscountPercent int64 `json:"maximum_discount_percent"`

	// PricePerSquareMeterCents is the flat area surcharge rate.
	// Default 50 (0.50 per m²).
	PricePerSquareMeterCents int64 `json:"price_per_square_meter_cents"`
}

// HourCreditConfig contains the hour-credit billing knobs.
type HourCreditConfig struct {
	// BaseRateCents is the per-hour rate for totals up to the tier
	// threshold. Default 5000 (50.00/h).
	BaseRateCents int64 `json:"base_rate_cents"`

	// BulkRateCents is the per-hour rate applied to ALL hours once the
	// total exceeds the tier threshold. Default 4500 (45.00/h).
	BulkRateCents int64 `json:"bulk_rate_cents"`

	// TierThresholdHours is the cliff between the two rates. Default 40.
	TierThresholdHours int64 `json:"tier_threshold_hours"`

	// ProductFeeCents is the flat product fee per booking. Default 3000.
	ProductFeeCents int64 `json:"product_fee_cents"`

	// PackageSizes are the purchasable hour packages, ascending.
	// Default 40, 60, 80, 100, 120.
	PackageSizes []int64 `json:"package_sizes"`

	// DefaultExpiryDays is how long purchased credit stays redeemable.
	// Default 365.
	DefaultExpiryDays int `json:"default_expiry_days"`
}

// Default returns the configuration with all documented defaults.
func Default() *Config {
	return &Config{
		SpannerDB: "projects/test-project/instances/dev-instance/databases/cleanprice-db",
		Pricing: PricingConfig{
			MinimumPriceCents:        8000,
			ServiceFeePercent:        5,
			MaximumDiscountPercent:   30,
			PricePerSquareMeterCents: 50,
		},
		HourCredit: HourCreditConfig{
			BaseRateCents:      5000,
			BulkRateCents:      4500,
			TierThresholdHours: 40,
			ProductFeeCents:    3000,
			PackageSizes:       []int64{40, 60, 80, 100, 120},
			DefaultExpiryDays:  365,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file, applied over the defaults
// field by field. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv applies environment overrides. Only the Spanner database is
// runtime-environment specific; pricing policy stays in the file.
func (c *Config) FromEnv() {
	if db := os.Getenv("SPANNER_DATABASE"); db != "" {
		c.SpannerDB = db
	}
}
