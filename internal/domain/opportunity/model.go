package opportunity

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Opportunity is a priceable request: a set of positions for a business
// unit plus the addons selected for it. Opportunities are immutable once
// priced; pricing always recomputes from scratch.
type Opportunity struct {
	// ID uuid identifier for the opportunity
	ID string `json:"id"`

	// BusinessUnitID selects the pricing configuration to apply
	BusinessUnitID string `json:"business_unit_id"`

	// PositionCount is the number of positions covered, at least 1
	PositionCount int `json:"position_count"`

	// AggregateSalary is the combined annual salary of the covered
	// positions, the base for percentage pricing
	AggregateSalary decimal.Decimal `json:"aggregate_salary"`

	// DurationMonths is the service commitment length, 0 for one-off
	DurationMonths int `json:"duration_months"`

	// SelectedAddonIDs are the addons attached to this opportunity
	SelectedAddonIDs []string `json:"selected_addon_ids"`

	// CouponCode optionally references a discount coupon
	CouponCode string `json:"coupon_code,omitempty"`
}

func (o *Opportunity) Validate() error {
	if o.BusinessUnitID == "" {
		return ierr.NewError("business unit id is required").
			WithHint("Please provide a business unit identifier").
			Mark(ierr.ErrValidation)
	}

	if o.PositionCount < 1 {
		return ierr.NewError("position count must be at least 1").
			WithHint("An opportunity must cover at least one position").
			WithReportableDetails(map[string]any{
				"position_count": o.PositionCount,
			}).
			Mark(ierr.ErrValidation)
	}

	if o.AggregateSalary.IsNegative() {
		return ierr.NewError("aggregate salary cannot be negative").
			WithHint("Aggregate salary must be zero or positive").
			WithReportableDetails(map[string]any{
				"aggregate_salary": o.AggregateSalary.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if o.DurationMonths < 0 {
		return ierr.NewError("duration cannot be negative").
			WithHint("Duration in months must be zero or positive").
			WithReportableDetails(map[string]any{
				"duration_months": o.DurationMonths,
			}).
			Mark(ierr.ErrValidation)
	}

	if len(lo.Uniq(o.SelectedAddonIDs)) != len(o.SelectedAddonIDs) {
		return ierr.NewError("selected addons must be unique").
			WithHint("The same addon cannot be selected twice").
			WithReportableDetails(map[string]any{
				"selected_addon_ids": o.SelectedAddonIDs,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
