package baseline

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// PricingBaseline is the per business unit default pricing rule. Exactly
// one of BasePrice or Percentage is authoritative depending on Model.
type PricingBaseline struct {
	// BusinessUnitID identifies the business unit this baseline prices for
	BusinessUnitID string `json:"business_unit_id"`

	// Model selects between a fixed amount and a percentage of salary
	Model types.PricingModel `json:"model"`

	// BasePrice is the fixed amount, used iff Model is FIXED
	BasePrice decimal.Decimal `json:"base_price"`

	// Percentage of the aggregate salary, used iff Model is PERCENTAGE
	Percentage decimal.Decimal `json:"percentage"`
}

func (b *PricingBaseline) Validate() error {
	if b.BusinessUnitID == "" {
		return ierr.NewError("business unit id is required").
			WithHint("Please provide a business unit identifier").
			Mark(ierr.ErrValidation)
	}

	if err := b.Model.Validate(); err != nil {
		return err
	}

	switch b.Model {
	case types.PRICING_MODEL_FIXED:
		if b.BasePrice.IsNegative() {
			return ierr.NewError("base price cannot be negative").
				WithHint("Fixed baselines require a non-negative base price").
				WithReportableDetails(map[string]any{
					"business_unit_id": b.BusinessUnitID,
					"base_price":       b.BasePrice.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	case types.PRICING_MODEL_PERCENTAGE:
		if b.Percentage.IsNegative() || b.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewError("percentage must be between 0 and 100").
				WithHint("Percentage baselines require a percentage between 0 and 100").
				WithReportableDetails(map[string]any{
					"business_unit_id": b.BusinessUnitID,
					"percentage":       b.Percentage.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// BaseAmount derives the base service amount for an opportunity
func (b *PricingBaseline) BaseAmount(aggregateSalary decimal.Decimal) decimal.Decimal {
	if b.Model == types.PRICING_MODEL_FIXED {
		return b.BasePrice
	}
	return aggregateSalary.Mul(b.Percentage).Div(decimal.NewFromInt(100))
}
