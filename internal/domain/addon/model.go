package addon

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// AddonDefinition is a separately priced extra service attachable to a
// base offering, e.g. a talent analysis report or an extended guarantee.
type AddonDefinition struct {
	// ID is the globally unique addon identifier ex addon_talent_360
	ID string `json:"id"`

	// Name is the human readable addon name
	Name string `json:"name"`

	// Rate is either a flat amount or a percentage depending on RateType
	Rate decimal.Decimal `json:"rate"`

	// RateType determines how Rate is interpreted
	RateType types.AddonRateType `json:"rate_type"`

	// BundleEligible marks the addon as sellable inside a bundle
	BundleEligible bool `json:"bundle_eligible"`
}

func (d *AddonDefinition) Validate() error {
	if d.ID == "" {
		return ierr.NewError("addon id is required").
			WithHint("Please provide an addon identifier").
			Mark(ierr.ErrValidation)
	}

	if err := d.RateType.Validate(); err != nil {
		return err
	}

	if d.Rate.IsNegative() {
		return ierr.NewError("addon rate cannot be negative").
			WithHint("Addon rates must be zero or positive").
			WithReportableDetails(map[string]any{
				"addon_id": d.ID,
				"rate":     d.Rate.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if d.RateType == types.ADDON_RATE_PERCENTAGE && d.Rate.GreaterThan(decimal.NewFromInt(100)) {
		return ierr.NewError("addon percentage rate cannot exceed 100").
			WithHint("Percentage addon rates must be between 0 and 100").
			WithReportableDetails(map[string]any{
				"addon_id": d.ID,
				"rate":     d.Rate.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Amount computes the addon's raw charge for an opportunity.
// Percentage rates apply to the aggregate salary, the same base the
// percentage pricing model uses.
func (d *AddonDefinition) Amount(aggregateSalary decimal.Decimal) decimal.Decimal {
	switch d.RateType {
	case types.ADDON_RATE_PERCENTAGE:
		return d.Rate.Mul(aggregateSalary).Div(decimal.NewFromInt(100))
	default:
		return d.Rate
	}
}
