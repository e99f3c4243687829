package tier

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/shopspring/decimal"
)

// Tier is one ascending breakpoint of a discount table. MinThreshold is
// a position count for volume tables and a month count for duration
// tables.
type Tier struct {
	MinThreshold       int             `json:"min_threshold"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// Table is an ordered list of tiers with strictly ascending thresholds
// and non-decreasing discounts.
type Table []Tier

func (t Table) Validate() error {
	hundred := decimal.NewFromInt(100)

	for i, tier := range t {
		if tier.MinThreshold < 0 {
			return ierr.NewError("tier threshold cannot be negative").
				WithHint("Tier thresholds must be zero or positive").
				WithReportableDetails(map[string]any{
					"index":     i,
					"threshold": tier.MinThreshold,
				}).
				Mark(ierr.ErrValidation)
		}

		if tier.DiscountPercentage.IsNegative() || tier.DiscountPercentage.GreaterThanOrEqual(hundred) {
			return ierr.NewError("tier discount must be between 0 and 100").
				WithHint("Tier discounts must be in the range [0, 100)").
				WithReportableDetails(map[string]any{
					"index":    i,
					"discount": tier.DiscountPercentage.String(),
				}).
				Mark(ierr.ErrValidation)
		}

		if i == 0 {
			continue
		}

		if tier.MinThreshold <= t[i-1].MinThreshold {
			return ierr.NewError("tier thresholds must be strictly ascending").
				WithHint("Each tier threshold must be greater than the previous one").
				WithReportableDetails(map[string]any{
					"index":     i,
					"threshold": tier.MinThreshold,
					"previous":  t[i-1].MinThreshold,
				}).
				Mark(ierr.ErrValidation)
		}

		if tier.DiscountPercentage.LessThan(t[i-1].DiscountPercentage) {
			return ierr.NewError("tier discounts must be non-decreasing").
				WithHint("A higher tier cannot carry a smaller discount").
				WithReportableDetails(map[string]any{
					"index":    i,
					"discount": tier.DiscountPercentage.String(),
					"previous": t[i-1].DiscountPercentage.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// DiscountFor returns the discount percentage of the highest tier whose
// threshold is reached by quantity. Falling below the lowest tier yields
// zero, not an error.
func (t Table) DiscountFor(quantity int) decimal.Decimal {
	discount := decimal.Zero
	for _, tier := range t {
		if tier.MinThreshold > quantity {
			break
		}
		discount = tier.DiscountPercentage
	}
	return discount
}
