package coupon

import (
	"testing"
	"time"

	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEnsureRedeemable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		coupon    Coupon
		expectErr bool
	}{
		{
			name: "published coupon with no window",
			coupon: Coupon{
				Code:   "OPEN",
				Type:   types.CouponTypeFixed,
				Status: types.StatusPublished,
			},
		},
		{
			name: "inside redemption window",
			coupon: Coupon{
				Code:         "WINDOW",
				Type:         types.CouponTypeFixed,
				Status:       types.StatusPublished,
				RedeemAfter:  lo.ToPtr(now.Add(-time.Hour)),
				RedeemBefore: lo.ToPtr(now.Add(time.Hour)),
			},
		},
		{
			name: "archived coupon",
			coupon: Coupon{
				Code:   "GONE",
				Type:   types.CouponTypeFixed,
				Status: types.StatusArchived,
			},
			expectErr: true,
		},
		{
			name: "not redeemable yet",
			coupon: Coupon{
				Code:        "EARLY",
				Type:        types.CouponTypeFixed,
				Status:      types.StatusPublished,
				RedeemAfter: lo.ToPtr(now.Add(time.Hour)),
			},
			expectErr: true,
		},
		{
			name: "expired",
			coupon: Coupon{
				Code:         "LATE",
				Type:         types.CouponTypeFixed,
				Status:       types.StatusPublished,
				RedeemBefore: lo.ToPtr(now.Add(-time.Hour)),
			},
			expectErr: true,
		},
		{
			name: "redemptions exhausted",
			coupon: Coupon{
				Code:             "USEDUP",
				Type:             types.CouponTypeFixed,
				Status:           types.StatusPublished,
				MaxRedemptions:   lo.ToPtr(3),
				TotalRedemptions: 3,
			},
			expectErr: true,
		},
		{
			name: "redemptions remaining",
			coupon: Coupon{
				Code:             "LEFT",
				Type:             types.CouponTypeFixed,
				Status:           types.StatusPublished,
				MaxRedemptions:   lo.ToPtr(3),
				TotalRedemptions: 2,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coupon.EnsureRedeemable(now)
			if tc.expectErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsInvalidCoupon(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateDiscount(t *testing.T) {
	total := decimal.NewFromInt(2000)

	fixed := Coupon{Type: types.CouponTypeFixed, AmountOff: decimal.NewFromInt(150)}
	assert.True(t, fixed.CalculateDiscount(total).Equal(decimal.NewFromInt(150)))

	percentage := Coupon{Type: types.CouponTypePercentage, PercentageOff: decimal.NewFromInt(25)}
	assert.True(t, percentage.CalculateDiscount(total).Equal(decimal.NewFromInt(500)))

	unknown := Coupon{Type: types.CouponType("mystery")}
	assert.True(t, unknown.CalculateDiscount(total).IsZero())
}

func TestCouponValidate(t *testing.T) {
	now := time.Now().UTC()

	testCases := []struct {
		name      string
		coupon    Coupon
		expectErr bool
	}{
		{
			name:   "valid fixed coupon",
			coupon: Coupon{Code: "FIX", Type: types.CouponTypeFixed, AmountOff: decimal.NewFromInt(10)},
		},
		{
			name:   "valid percentage coupon",
			coupon: Coupon{Code: "PCT", Type: types.CouponTypePercentage, PercentageOff: decimal.NewFromInt(10)},
		},
		{
			name:      "missing code",
			coupon:    Coupon{Type: types.CouponTypeFixed},
			expectErr: true,
		},
		{
			name:      "negative fixed amount",
			coupon:    Coupon{Code: "NEG", Type: types.CouponTypeFixed, AmountOff: decimal.NewFromInt(-5)},
			expectErr: true,
		},
		{
			name:      "percentage above 100",
			coupon:    Coupon{Code: "BIG", Type: types.CouponTypePercentage, PercentageOff: decimal.NewFromInt(101)},
			expectErr: true,
		},
		{
			name:      "unknown type",
			coupon:    Coupon{Code: "ODD", Type: types.CouponType("bogus")},
			expectErr: true,
		},
		{
			name: "inverted redemption window",
			coupon: Coupon{
				Code:         "FLIP",
				Type:         types.CouponTypeFixed,
				RedeemAfter:  lo.ToPtr(now.Add(time.Hour)),
				RedeemBefore: lo.ToPtr(now),
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coupon.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
