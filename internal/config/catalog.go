package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Catalog is the raw pricing configuration as declared by business-unit
// setup. Amount fields are kept as strings here and parsed into decimals
// by the catalog store so that money never passes through binary floats.
type Catalog struct {
	Addons        []CatalogAddon        `mapstructure:"addons"`
	Bundles       []CatalogBundle       `mapstructure:"bundles"`
	BusinessUnits []CatalogBusinessUnit `mapstructure:"business_units"`
	Coupons       []CatalogCoupon       `mapstructure:"coupons"`
}

type CatalogAddon struct {
	ID             string `mapstructure:"id"`
	Name           string `mapstructure:"name"`
	Rate           string `mapstructure:"rate"`
	RateType       string `mapstructure:"rate_type"`
	BundleEligible bool   `mapstructure:"bundle_eligible"`
}

type CatalogBundle struct {
	ID                 string   `mapstructure:"id"`
	Name               string   `mapstructure:"name"`
	MemberAddonIDs     []string `mapstructure:"member_addon_ids"`
	DiscountPercentage string   `mapstructure:"discount_percentage"`
}

type CatalogBusinessUnit struct {
	ID                string             `mapstructure:"id"`
	Name              string             `mapstructure:"name"`
	Baseline          CatalogBaseline    `mapstructure:"baseline"`
	VolumeTiers       []CatalogTier      `mapstructure:"volume_tiers"`
	DurationTiers     []CatalogTier      `mapstructure:"duration_tiers"`
	MilestoneTemplate []CatalogMilestone `mapstructure:"milestone_template"`
}

type CatalogBaseline struct {
	Model      string `mapstructure:"model"`
	BasePrice  string `mapstructure:"base_price"`
	Percentage string `mapstructure:"percentage"`
}

type CatalogTier struct {
	MinThreshold       int    `mapstructure:"min_threshold"`
	DiscountPercentage string `mapstructure:"discount_percentage"`
}

type CatalogMilestone struct {
	Label      string `mapstructure:"label"`
	Percentage string `mapstructure:"percentage"`
	Trigger    string `mapstructure:"trigger"`
}

type CatalogCoupon struct {
	Code           string `mapstructure:"code"`
	Type           string `mapstructure:"type"`
	AmountOff      string `mapstructure:"amount_off"`
	PercentageOff  string `mapstructure:"percentage_off"`
	RedeemBefore   string `mapstructure:"redeem_before"`
	MaxRedemptions *int   `mapstructure:"max_redemptions"`
}

// LoadCatalog reads the pricing catalog file referenced by the
// configuration. A missing catalog is a fatal configuration error:
// the engine never prices against a defaulted catalog.
func LoadCatalog(cfg *Configuration) (*Catalog, error) {
	v := viper.New()

	path := cfg.Catalog.Path
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "yaml"
	}
	v.SetConfigFile(path)
	v.SetConfigType(ext)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := v.Unmarshal(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}
