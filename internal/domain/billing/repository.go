package billing

import "context"

type TemplateRepository interface {
	// GetTemplate returns the milestone template of a business unit,
	// ErrNotFound when the business unit has none configured
	GetTemplate(ctx context.Context, businessUnitID string) (*MilestoneTemplate, error)
}
