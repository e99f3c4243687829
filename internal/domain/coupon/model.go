package coupon

import (
	"time"

	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// Coupon represents a discount coupon entity. The engine validates
// coupons structurally; persisting and decrementing redemptions is the
// caller's responsibility.
type Coupon struct {
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	RedeemAfter      *time.Time       `json:"redeem_after"`
	RedeemBefore     *time.Time       `json:"redeem_before"`
	MaxRedemptions   *int             `json:"max_redemptions"`
	TotalRedemptions int              `json:"total_redemptions"`
	AmountOff        decimal.Decimal  `json:"amount_off"`
	PercentageOff    decimal.Decimal  `json:"percentage_off"`
	Type             types.CouponType `json:"type"`
	Status           types.Status     `json:"status"`
}

// EnsureRedeemable checks that the coupon is active, inside its
// redemption window and has redemptions left
func (c *Coupon) EnsureRedeemable(now time.Time) error {
	if c.Status != types.StatusPublished {
		return ierr.NewError("coupon is not active").
			WithHintf("Coupon %s is not active", c.Code).
			WithReportableDetails(map[string]any{
				"code":   c.Code,
				"status": c.Status,
			}).
			Mark(ierr.ErrInvalidCoupon)
	}

	if c.RedeemAfter != nil && now.Before(*c.RedeemAfter) {
		return ierr.NewError("coupon is not redeemable yet").
			WithHintf("Coupon %s cannot be redeemed before %s", c.Code, c.RedeemAfter.Format(time.RFC3339)).
			Mark(ierr.ErrInvalidCoupon)
	}

	if c.RedeemBefore != nil && now.After(*c.RedeemBefore) {
		return ierr.NewError("coupon has expired").
			WithHintf("Coupon %s expired on %s", c.Code, c.RedeemBefore.Format(time.RFC3339)).
			Mark(ierr.ErrInvalidCoupon)
	}

	if c.MaxRedemptions != nil && c.TotalRedemptions >= *c.MaxRedemptions {
		return ierr.NewError("coupon has no redemptions left").
			WithHintf("Coupon %s has reached its redemption limit", c.Code).
			Mark(ierr.ErrInvalidCoupon)
	}

	return nil
}

// CalculateDiscount calculates the discount amount for a given total
func (c *Coupon) CalculateDiscount(total decimal.Decimal) decimal.Decimal {
	switch c.Type {
	case types.CouponTypeFixed:
		return c.AmountOff
	case types.CouponTypePercentage:
		return total.Mul(c.PercentageOff).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
}

func (c *Coupon) Validate() error {
	if c.Code == "" {
		return ierr.NewError("coupon code is required").
			WithHint("Please provide a coupon code").
			Mark(ierr.ErrValidation)
	}

	switch c.Type {
	case types.CouponTypeFixed:
		if c.AmountOff.IsNegative() {
			return ierr.NewError("amount_off cannot be negative").
				WithHintf("Coupon %s has a negative amount", c.Code).
				Mark(ierr.ErrValidation)
		}
	case types.CouponTypePercentage:
		if c.PercentageOff.IsNegative() || c.PercentageOff.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewError("percentage_off must be between 0 and 100").
				WithHintf("Coupon %s has an invalid percentage", c.Code).
				Mark(ierr.ErrValidation)
		}
	default:
		return ierr.NewError("invalid coupon type").
			WithHint("Coupon type must be fixed or percentage").
			WithReportableDetails(map[string]any{
				"code": c.Code,
				"type": c.Type,
			}).
			Mark(ierr.ErrValidation)
	}

	if c.RedeemAfter != nil && c.RedeemBefore != nil && c.RedeemAfter.After(*c.RedeemBefore) {
		return ierr.NewError("redeem_after must be before redeem_before").
			WithHintf("Coupon %s has an inverted redemption window", c.Code).
			Mark(ierr.ErrValidation)
	}

	return nil
}
