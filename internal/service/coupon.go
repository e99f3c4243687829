package service

import (
	"context"
	"time"

	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	"github.com/hireloop/pricing-engine/internal/domain/pricing"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// CouponService applies discount coupons to priced breakdowns. Coupons
// discount the final total only, after every other discount, so the
// stacking order stays unambiguous. Decrementing a coupon's redemption
// count on success is the caller's responsibility.
type CouponService interface {
	Apply(ctx context.Context, breakdown *pricing.PriceBreakdown, c *coupon.Coupon) (*pricing.PriceBreakdown, error)
	ApplyByCode(ctx context.Context, breakdown *pricing.PriceBreakdown, code string) (*pricing.PriceBreakdown, error)
}

type couponService struct {
	ServiceParams
}

func NewCouponService(params ServiceParams) CouponService {
	return &couponService{ServiceParams: params}
}

// Apply validates the coupon and returns a new breakdown with the coupon
// discount taken off the final total. The input breakdown is not mutated.
func (s *couponService) Apply(ctx context.Context, breakdown *pricing.PriceBreakdown, c *coupon.Coupon) (*pricing.PriceBreakdown, error) {
	if breakdown == nil {
		return nil, ierr.NewError("price breakdown cannot be nil").
			WithHint("A priced breakdown is required").
			Mark(ierr.ErrValidation)
	}
	if c == nil {
		return nil, ierr.NewError("coupon cannot be nil").
			WithHint("A coupon is required").
			Mark(ierr.ErrInvalidCoupon)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.EnsureRedeemable(time.Now().UTC()); err != nil {
		return nil, err
	}

	discount := c.CalculateDiscount(breakdown.FinalTotal).
		RoundBank(types.CURRENCY_PRECISION)
	// A coupon can at most zero the total, never push it negative
	if discount.GreaterThan(breakdown.FinalTotal) {
		discount = breakdown.FinalTotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	applied := breakdown.Clone()
	applied.CouponDiscount = discount
	applied.CouponCode = c.Code
	applied.FinalTotal = breakdown.FinalTotal.Sub(discount)

	s.Logger.WithContext(ctx).Debugw("applied coupon",
		"breakdown_id", breakdown.ID,
		"coupon_code", c.Code,
		"discount", discount.String(),
		"final_total", applied.FinalTotal.String(),
	)

	return applied, nil
}

// ApplyByCode resolves the coupon from the repository first. An unknown
// code is reported as an invalid coupon, not a system error.
func (s *couponService) ApplyByCode(ctx context.Context, breakdown *pricing.PriceBreakdown, code string) (*pricing.PriceBreakdown, error) {
	if code == "" {
		return nil, ierr.NewError("coupon code is required").
			WithHint("Please provide a coupon code").
			Mark(ierr.ErrInvalidCoupon)
	}

	c, err := s.CouponRepo.GetByCode(ctx, code)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("coupon not found").
				WithHintf("No coupon with code %s", code).
				Mark(ierr.ErrInvalidCoupon)
		}
		return nil, err
	}

	return s.Apply(ctx, breakdown, c)
}
