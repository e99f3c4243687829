package tier

import "context"

type Repository interface {
	// VolumeTable returns the position-count discount table of a business
	// unit. An absent table means no volume discounting.
	VolumeTable(ctx context.Context, businessUnitID string) (Table, error)

	// DurationTable returns the commitment-duration discount table of a
	// business unit. An absent table means no recurring discounting.
	DurationTable(ctx context.Context, businessUnitID string) (Table, error)
}
