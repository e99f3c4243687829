package baseline

import "context"

type Repository interface {
	// Resolve returns the baseline for a business unit. A business unit
	// without a baseline is a fatal configuration error, never defaulted.
	Resolve(ctx context.Context, businessUnitID string) (*PricingBaseline, error)
}
