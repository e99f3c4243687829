package coupon

import "context"

type Repository interface {
	// GetByCode returns the coupon with the given code, ErrNotFound when
	// no such coupon exists
	GetByCode(ctx context.Context, code string) (*Coupon, error)
}
