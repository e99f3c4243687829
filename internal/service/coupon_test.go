package service

import (
	"testing"
	"time"

	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/testutil"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CouponServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CouponService
}

func TestCouponService(t *testing.T) {
	suite.Run(t, new(CouponServiceSuite))
}

func (s *CouponServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCouponService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Registry:     s.GetRegistry(),
		BaselineRepo: s.GetStores().BaselineRepo,
		TierRepo:     s.GetStores().TierRepo,
		BundleRepo:   s.GetStores().BundleRepo,
		TemplateRepo: s.GetStores().TemplateRepo,
		CouponRepo:   s.GetStores().CouponRepo,
	})
}

func (s *CouponServiceSuite) TestFixedCoupon() {
	breakdown := breakdownWithTotal("1000.00")
	applied, err := s.service.Apply(s.GetContext(), breakdown, &coupon.Coupon{
		Code:      "WELCOME100",
		Type:      types.CouponTypeFixed,
		AmountOff: decimal.NewFromInt(100),
		Status:    types.StatusPublished,
	})
	s.NoError(err)
	s.True(applied.FinalTotal.Equal(decimal.RequireFromString("900.00")))
	s.True(applied.CouponDiscount.Equal(decimal.RequireFromString("100.00")))
	s.Equal("WELCOME100", applied.CouponCode)

	// The input breakdown is untouched
	s.True(breakdown.FinalTotal.Equal(decimal.RequireFromString("1000.00")))
	s.True(breakdown.CouponDiscount.IsZero())
}

func (s *CouponServiceSuite) TestPercentageCoupon() {
	applied, err := s.service.Apply(s.GetContext(), breakdownWithTotal("1000.00"), &coupon.Coupon{
		Code:          "TEN",
		Type:          types.CouponTypePercentage,
		PercentageOff: decimal.NewFromInt(10),
		Status:        types.StatusPublished,
	})
	s.NoError(err)
	s.True(applied.FinalTotal.Equal(decimal.RequireFromString("900.00")))
}

func (s *CouponServiceSuite) TestCouponClampsAtZero() {
	applied, err := s.service.Apply(s.GetContext(), breakdownWithTotal("50.00"), &coupon.Coupon{
		Code:      "BIG",
		Type:      types.CouponTypeFixed,
		AmountOff: decimal.NewFromInt(500),
		Status:    types.StatusPublished,
	})
	s.NoError(err)
	s.True(applied.FinalTotal.IsZero())
	// Reported discount is the amount actually taken
	s.True(applied.CouponDiscount.Equal(decimal.RequireFromString("50.00")))
}

func (s *CouponServiceSuite) TestExpiredCoupon() {
	expired := time.Now().UTC().Add(-24 * time.Hour)
	_, err := s.service.Apply(s.GetContext(), breakdownWithTotal("1000.00"), &coupon.Coupon{
		Code:         "OLD",
		Type:         types.CouponTypeFixed,
		AmountOff:    decimal.NewFromInt(10),
		Status:       types.StatusPublished,
		RedeemBefore: &expired,
	})
	s.Error(err)
	s.True(ierr.IsInvalidCoupon(err))
}

func (s *CouponServiceSuite) TestExhaustedCoupon() {
	_, err := s.service.Apply(s.GetContext(), breakdownWithTotal("1000.00"), &coupon.Coupon{
		Code:             "SPENT",
		Type:             types.CouponTypeFixed,
		AmountOff:        decimal.NewFromInt(10),
		Status:           types.StatusPublished,
		MaxRedemptions:   lo.ToPtr(5),
		TotalRedemptions: 5,
	})
	s.Error(err)
	s.True(ierr.IsInvalidCoupon(err))
}

func (s *CouponServiceSuite) TestArchivedCoupon() {
	_, err := s.service.Apply(s.GetContext(), breakdownWithTotal("1000.00"), &coupon.Coupon{
		Code:      "GONE",
		Type:      types.CouponTypeFixed,
		AmountOff: decimal.NewFromInt(10),
		Status:    types.StatusArchived,
	})
	s.Error(err)
	s.True(ierr.IsInvalidCoupon(err))
}

func (s *CouponServiceSuite) TestApplyByCode() {
	s.NoError(s.GetStores().CouponRepo.(*testutil.InMemoryCouponStore).Create(&coupon.Coupon{
		Code:      "SAVE50",
		Type:      types.CouponTypeFixed,
		AmountOff: decimal.NewFromInt(50),
		Status:    types.StatusPublished,
	}))

	applied, err := s.service.ApplyByCode(s.GetContext(), breakdownWithTotal("1000.00"), "SAVE50")
	s.NoError(err)
	s.True(applied.FinalTotal.Equal(decimal.RequireFromString("950.00")))

	// Unknown codes surface as invalid coupons, not as system errors
	_, err = s.service.ApplyByCode(s.GetContext(), breakdownWithTotal("1000.00"), "NOPE")
	s.Error(err)
	s.True(ierr.IsInvalidCoupon(err))
}
