package service

import (
	"context"

	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/pricing"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// BillingService converts a priced breakdown into a progressive payment
// schedule
type BillingService interface {
	GenerateMilestones(ctx context.Context, breakdown *pricing.PriceBreakdown, template *billing.MilestoneTemplate) ([]*billing.Milestone, error)
	GenerateForBusinessUnit(ctx context.Context, breakdown *pricing.PriceBreakdown) ([]*billing.Milestone, error)
}

type billingService struct {
	ServiceParams
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{ServiceParams: params}
}

// GenerateMilestones splits a breakdown's final total across the
// template's installments. Per-milestone amounts are rounded half-even
// to cents; the last milestone absorbs the rounding residual so the
// schedule sums to the final total exactly.
func (s *billingService) GenerateMilestones(ctx context.Context, breakdown *pricing.PriceBreakdown, template *billing.MilestoneTemplate) ([]*billing.Milestone, error) {
	if breakdown == nil {
		return nil, ierr.NewError("price breakdown cannot be nil").
			WithHint("A priced breakdown is required").
			Mark(ierr.ErrValidation)
	}
	if template == nil {
		return nil, ierr.NewError("milestone template cannot be nil").
			WithHint("A milestone template is required").
			Mark(ierr.ErrInvalidTemplate)
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	total := breakdown.FinalTotal
	milestones := make([]*billing.Milestone, 0, len(template.Entries))
	allocated := decimal.Zero

	for i, entry := range template.Entries {
		var amount decimal.Decimal
		if i == len(template.Entries)-1 {
			amount = total.Sub(allocated)
		} else {
			amount = total.Mul(entry.Percentage).Div(hundred).
				RoundBank(types.CURRENCY_PRECISION)
		}
		allocated = allocated.Add(amount)

		milestones = append(milestones, &billing.Milestone{
			ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MILESTONE),
			BreakdownID:       breakdown.ID,
			SequenceIndex:     i,
			Label:             entry.Label,
			PercentageOfTotal: entry.Percentage,
			Amount:            amount,
			Trigger:           entry.Trigger,
		})
	}

	s.Logger.WithContext(ctx).Debugw("generated milestone schedule",
		"breakdown_id", breakdown.ID,
		"milestones", len(milestones),
		"total", total.String(),
	)

	return milestones, nil
}

// GenerateForBusinessUnit resolves the breakdown's business unit
// template and delegates to GenerateMilestones
func (s *billingService) GenerateForBusinessUnit(ctx context.Context, breakdown *pricing.PriceBreakdown) ([]*billing.Milestone, error) {
	if breakdown == nil {
		return nil, ierr.NewError("price breakdown cannot be nil").
			WithHint("A priced breakdown is required").
			Mark(ierr.ErrValidation)
	}

	template, err := s.TemplateRepo.GetTemplate(ctx, breakdown.BusinessUnitID)
	if err != nil {
		return nil, err
	}

	return s.GenerateMilestones(ctx, breakdown, template)
}
