package service

import (
	"context"
	"time"

	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	"github.com/hireloop/pricing-engine/internal/domain/opportunity"
	"github.com/hireloop/pricing-engine/internal/domain/pricing"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// PricingService computes itemized price breakdowns for opportunities
type PricingService interface {
	Calculate(ctx context.Context, opp *opportunity.Opportunity) (*pricing.PriceBreakdown, error)
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

var hundred = decimal.NewFromInt(100)

// Calculate prices an opportunity against its business unit's catalog
// configuration. There is no partial result: pricing fully succeeds or
// fails closed. Identical input always yields an identical breakdown
// apart from the generated id and timestamp.
func (s *pricingService) Calculate(ctx context.Context, opp *opportunity.Opportunity) (*pricing.PriceBreakdown, error) {
	if opp == nil {
		return nil, ierr.NewError("opportunity cannot be nil").
			WithHint("Opportunity is required").
			Mark(ierr.ErrValidation)
	}
	if err := opp.Validate(); err != nil {
		return nil, err
	}

	bl, err := s.BaselineRepo.Resolve(ctx, opp.BusinessUnitID)
	if err != nil {
		return nil, err
	}

	baseAmount := bl.BaseAmount(opp.AggregateSalary).RoundBank(types.CURRENCY_PRECISION)

	// Addon charges, each looked up in the shared registry. A single
	// unknown addon fails the whole calculation.
	addonAmounts := make(map[string]decimal.Decimal, len(opp.SelectedAddonIDs))
	addonSubtotal := decimal.Zero
	for _, addonID := range opp.SelectedAddonIDs {
		def, err := s.Registry.Get(addonID)
		if err != nil {
			return nil, err
		}
		amount := def.Amount(opp.AggregateSalary).RoundBank(types.CURRENCY_PRECISION)
		addonAmounts[addonID] = amount
		addonSubtotal = addonSubtotal.Add(amount)
	}

	// Bundle discount reduces the addon subtotal only
	bundles, err := s.BundleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	bundleDiscount := decimal.Zero
	var matchedBundleID *string
	if best := bundle.BestMatch(opp.SelectedAddonIDs, bundles); best != nil {
		bundleDiscount = addonSubtotal.Mul(best.DiscountPercentage).Div(hundred).
			RoundBank(types.CURRENCY_PRECISION)
		matchedBundleID = types.ToNillableString(best.ID)
	}

	// Volume and recurring discounts reduce the base amount only. They
	// stack additively on that one base; the combined reduction is
	// clamped at 100% of it so the base contribution never goes negative.
	volumeDiscount, err := s.volumeDiscount(ctx, opp, baseAmount)
	if err != nil {
		return nil, err
	}
	recurringDiscount, err := s.recurringDiscount(ctx, opp, baseAmount)
	if err != nil {
		return nil, err
	}
	if remaining := baseAmount.Sub(volumeDiscount); recurringDiscount.GreaterThan(remaining) {
		recurringDiscount = remaining
	}

	finalTotal := baseAmount.Sub(volumeDiscount).Sub(recurringDiscount).
		Add(addonSubtotal.Sub(bundleDiscount)).
		RoundBank(types.CURRENCY_PRECISION)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	if finalTotal.GreaterThan(decimal.NewFromInt(types.MAX_QUOTE_AMOUNT)) {
		return nil, ierr.NewError("quote amount exceeds maximum").
			WithHintf("Computed total %s exceeds the allowed maximum", finalTotal.String()).
			Mark(ierr.ErrValidation)
	}

	breakdown := &pricing.PriceBreakdown{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICE_BREAKDOWN),
		OpportunityID:     opp.ID,
		BusinessUnitID:    opp.BusinessUnitID,
		BaseAmount:        baseAmount,
		AddonAmounts:      addonAmounts,
		AddonSubtotal:     addonSubtotal,
		VolumeDiscount:    volumeDiscount,
		RecurringDiscount: recurringDiscount,
		BundleDiscount:    bundleDiscount,
		MatchedBundleID:   matchedBundleID,
		CouponDiscount:    decimal.Zero,
		FinalTotal:        finalTotal,
		ComputedAt:        time.Now().UTC(),
	}

	s.Logger.WithContext(ctx).Debugw("priced opportunity",
		"opportunity_id", opp.ID,
		"business_unit_id", opp.BusinessUnitID,
		"base_amount", baseAmount.String(),
		"addon_subtotal", addonSubtotal.String(),
		"final_total", finalTotal.String(),
	)

	return breakdown, nil
}

func (s *pricingService) volumeDiscount(ctx context.Context, opp *opportunity.Opportunity, baseAmount decimal.Decimal) (decimal.Decimal, error) {
	table, err := s.TierRepo.VolumeTable(ctx, opp.BusinessUnitID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(table) == 0 {
		return decimal.Zero, nil
	}

	pct := table.DiscountFor(opp.PositionCount)
	return baseAmount.Mul(pct).Div(hundred).RoundBank(types.CURRENCY_PRECISION), nil
}

func (s *pricingService) recurringDiscount(ctx context.Context, opp *opportunity.Opportunity, baseAmount decimal.Decimal) (decimal.Decimal, error) {
	// One-off engagements never earn a commitment discount
	if opp.DurationMonths == 0 {
		return decimal.Zero, nil
	}

	table, err := s.TierRepo.DurationTable(ctx, opp.BusinessUnitID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(table) == 0 {
		return decimal.Zero, nil
	}

	pct := table.DiscountFor(opp.DurationMonths)
	return baseAmount.Mul(pct).Div(hundred).RoundBank(types.CURRENCY_PRECISION), nil
}
