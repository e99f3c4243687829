package dto

import (
	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/opportunity"
	"github.com/hireloop/pricing-engine/internal/domain/pricing"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest prices an opportunity end to end: breakdown,
// optional coupon, milestone schedule
type CreateQuoteRequest struct {
	BusinessUnitID  string          `json:"business_unit_id" validate:"required"`
	PositionCount   int             `json:"position_count" validate:"required,min=1"`
	AggregateSalary decimal.Decimal `json:"aggregate_salary"`
	DurationMonths  int             `json:"duration_months" validate:"min=0"`
	AddonIDs        []string        `json:"addon_ids,omitempty"`
	CouponCode      string          `json:"coupon_code,omitempty"`
}

func (r *CreateQuoteRequest) Validate() error {
	if r.BusinessUnitID == "" {
		return ierr.NewError("business_unit_id is required").
			WithHint("Please provide a business unit identifier").
			Mark(ierr.ErrValidation)
	}

	if r.PositionCount < 1 {
		return ierr.NewError("position_count must be at least 1").
			WithHint("A quote must cover at least one position").
			Mark(ierr.ErrValidation)
	}

	if r.AggregateSalary.IsNegative() {
		return ierr.NewError("aggregate_salary cannot be negative").
			WithHint("Aggregate salary must be zero or positive").
			Mark(ierr.ErrValidation)
	}

	if r.DurationMonths < 0 {
		return ierr.NewError("duration_months cannot be negative").
			WithHint("Duration in months must be zero or positive").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToOpportunity converts the request into a domain opportunity with a
// fresh identifier
func (r *CreateQuoteRequest) ToOpportunity() *opportunity.Opportunity {
	return &opportunity.Opportunity{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OPPORTUNITY),
		BusinessUnitID:   r.BusinessUnitID,
		PositionCount:    r.PositionCount,
		AggregateSalary:  r.AggregateSalary,
		DurationMonths:   r.DurationMonths,
		SelectedAddonIDs: r.AddonIDs,
		CouponCode:       r.CouponCode,
	}
}

// QuoteResponse carries the itemized breakdown plus the payment schedule
// derived from it
type QuoteResponse struct {
	Breakdown  *pricing.PriceBreakdown `json:"breakdown"`
	Milestones []*billing.Milestone    `json:"milestones"`
}
