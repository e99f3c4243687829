package types

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/samber/lo"
)

// PricingModel determines how a business unit's base amount is derived
type PricingModel string

const (
	// PRICING_MODEL_PERCENTAGE prices as a percentage of the aggregate salary
	PRICING_MODEL_PERCENTAGE PricingModel = "PERCENTAGE"

	// PRICING_MODEL_FIXED prices as a fixed amount per opportunity
	PRICING_MODEL_FIXED PricingModel = "FIXED"
)

func (m PricingModel) String() string {
	return string(m)
}

func (m PricingModel) Validate() error {
	allowedValues := []PricingModel{
		PRICING_MODEL_PERCENTAGE,
		PRICING_MODEL_FIXED,
	}

	if !lo.Contains(allowedValues, m) {
		return ierr.NewError("invalid pricing model").
			WithHint("Pricing model must be PERCENTAGE or FIXED").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": m,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// AddonRateType determines how an addon's rate is interpreted
type AddonRateType string

const (
	// ADDON_RATE_FIXED is a flat amount added to the quote
	ADDON_RATE_FIXED AddonRateType = "FIXED"

	// ADDON_RATE_PERCENTAGE is a percentage of the aggregate salary
	ADDON_RATE_PERCENTAGE AddonRateType = "PERCENTAGE"
)

func (t AddonRateType) String() string {
	return string(t)
}

func (t AddonRateType) Validate() error {
	allowedValues := []AddonRateType{
		ADDON_RATE_FIXED,
		ADDON_RATE_PERCENTAGE,
	}

	if !lo.Contains(allowedValues, t) {
		return ierr.NewError("invalid addon rate type").
			WithHint("Addon rate type must be FIXED or PERCENTAGE").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": t,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

const (
	// CURRENCY_PRECISION is the number of decimal places for money amounts
	CURRENCY_PRECISION = 2

	// MAX_QUOTE_AMOUNT is the maximum allowed quote amount (as a safeguard)
	MAX_QUOTE_AMOUNT = 1000000000000 // 1 trillion
)
