package testutil

import (
	"context"
	"sync"

	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
)

// InMemoryCouponStore implements coupon.Repository
type InMemoryCouponStore struct {
	mu      sync.RWMutex
	coupons map[string]*coupon.Coupon
}

func NewInMemoryCouponStore() *InMemoryCouponStore {
	return &InMemoryCouponStore{
		coupons: make(map[string]*coupon.Coupon),
	}
}

func copyCoupon(c *coupon.Coupon) *coupon.Coupon {
	if c == nil {
		return nil
	}
	copied := *c
	if c.RedeemAfter != nil {
		t := *c.RedeemAfter
		copied.RedeemAfter = &t
	}
	if c.RedeemBefore != nil {
		t := *c.RedeemBefore
		copied.RedeemBefore = &t
	}
	if c.MaxRedemptions != nil {
		n := *c.MaxRedemptions
		copied.MaxRedemptions = &n
	}
	return &copied
}

func (s *InMemoryCouponStore) Create(c *coupon.Coupon) error {
	if c == nil {
		return ierr.NewError("coupon cannot be nil").
			WithHint("Coupon cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.Code] = copyCoupon(c)
	return nil
}

func (s *InMemoryCouponStore) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.coupons[code]
	if !ok {
		return nil, ierr.NewError("coupon not found").
			WithHintf("No coupon with code %s", code).
			Mark(ierr.ErrNotFound)
	}
	return copyCoupon(c), nil
}

func (s *InMemoryCouponStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = make(map[string]*coupon.Coupon)
}
