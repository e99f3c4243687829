package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBreakdown is the fully itemized result of a pricing calculation.
// Every intermediate amount is preserved for audit and for proposal
// rendering downstream; the engine never returns a bare total.
type PriceBreakdown struct {
	// ID uuid identifier for the breakdown
	ID string `json:"id"`

	// OpportunityID references the priced opportunity
	OpportunityID string `json:"opportunity_id"`

	// BusinessUnitID the breakdown was priced under
	BusinessUnitID string `json:"business_unit_id"`

	// BaseAmount is the baseline charge before any discount
	BaseAmount decimal.Decimal `json:"base_amount"`

	// AddonAmounts maps each selected addon to its raw charge
	AddonAmounts map[string]decimal.Decimal `json:"addon_amounts"`

	// AddonSubtotal is the sum of AddonAmounts before the bundle discount
	AddonSubtotal decimal.Decimal `json:"addon_subtotal"`

	// VolumeDiscount is the amount taken off the base for quantity tiers
	VolumeDiscount decimal.Decimal `json:"volume_discount"`

	// RecurringDiscount is the amount taken off the base for duration tiers
	RecurringDiscount decimal.Decimal `json:"recurring_discount"`

	// BundleDiscount is the amount taken off the addon subtotal
	BundleDiscount decimal.Decimal `json:"bundle_discount"`

	// MatchedBundleID is set when a bundle discount was applied
	MatchedBundleID *string `json:"matched_bundle_id,omitempty"`

	// CouponDiscount is the amount taken off the final total, zero until
	// a coupon is applied
	CouponDiscount decimal.Decimal `json:"coupon_discount"`

	// CouponCode is the applied coupon, empty until one is applied
	CouponCode string `json:"coupon_code,omitempty"`

	// FinalTotal is the payable amount, rounded half-even to two
	// decimals and never negative
	FinalTotal decimal.Decimal `json:"final_total"`

	// ComputedAt is when the calculation ran
	ComputedAt time.Time `json:"computed_at"`
}

// Clone returns a deep copy. Coupon application works on a copy so a
// breakdown is never partially mutated.
func (b *PriceBreakdown) Clone() *PriceBreakdown {
	if b == nil {
		return nil
	}

	copied := *b
	copied.AddonAmounts = make(map[string]decimal.Decimal, len(b.AddonAmounts))
	for id, amount := range b.AddonAmounts {
		copied.AddonAmounts[id] = amount
	}
	if b.MatchedBundleID != nil {
		id := *b.MatchedBundleID
		copied.MatchedBundleID = &id
	}
	return &copied
}
