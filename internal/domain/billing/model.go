package billing

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// TemplateEntry is one planned installment of a milestone template
type TemplateEntry struct {
	// Label names the installment ex "On signature", "First tranche"
	Label string `json:"label"`

	// Percentage of the final total this installment collects
	Percentage decimal.Decimal `json:"percentage"`

	// Trigger is the contract event that makes the installment due
	Trigger types.MilestoneTrigger `json:"trigger"`
}

// MilestoneTemplate is a business unit's ordered payment plan shape,
// e.g. 50/50 on signature and delivery, or 30/30/40 across phases.
type MilestoneTemplate struct {
	BusinessUnitID string          `json:"business_unit_id"`
	Entries        []TemplateEntry `json:"entries"`
}

// Validate rejects templates whose percentages do not sum to exactly
// 100. Approximate sums are not accepted: a drifting template would
// silently over- or under-bill every contract priced with it.
func (t *MilestoneTemplate) Validate() error {
	if len(t.Entries) == 0 {
		return ierr.NewError("milestone template is empty").
			WithHint("A milestone template needs at least one entry").
			Mark(ierr.ErrInvalidTemplate)
	}

	sum := decimal.Zero
	for i, entry := range t.Entries {
		if entry.Percentage.LessThanOrEqual(decimal.Zero) {
			return ierr.NewError("milestone percentage must be positive").
				WithHintf("Milestone %d (%s) has a non-positive percentage", i, entry.Label).
				WithReportableDetails(map[string]any{
					"index":      i,
					"label":      entry.Label,
					"percentage": entry.Percentage.String(),
				}).
				Mark(ierr.ErrInvalidTemplate)
		}

		if err := entry.Trigger.Validate(); err != nil {
			return ierr.WithError(err).
				WithHintf("Milestone %d (%s) has an invalid trigger", i, entry.Label).
				Mark(ierr.ErrInvalidTemplate)
		}

		sum = sum.Add(entry.Percentage)
	}

	if !sum.Equal(decimal.NewFromInt(100)) {
		return ierr.NewError("milestone percentages must sum to exactly 100").
			WithHintf("Milestone percentages sum to %s, expected 100", sum.String()).
			WithReportableDetails(map[string]any{
				"sum": sum.String(),
			}).
			Mark(ierr.ErrInvalidTemplate)
	}

	return nil
}

// Milestone is one scheduled payment of a contract. Amounts across a
// schedule sum exactly to the breakdown's final total.
type Milestone struct {
	// ID uuid identifier for the milestone
	ID string `json:"id"`

	// BreakdownID references the priced breakdown this schedule bills
	BreakdownID string `json:"breakdown_id"`

	// SequenceIndex is the position in the schedule, fixed by template
	// order. E-signature flows downstream rely on it staying stable.
	SequenceIndex int `json:"sequence_index"`

	// Label names the installment
	Label string `json:"label"`

	// PercentageOfTotal is the template share this milestone collects
	PercentageOfTotal decimal.Decimal `json:"percentage_of_total"`

	// Amount is the payable amount, two decimals
	Amount decimal.Decimal `json:"amount"`

	// Trigger is the contract event that makes the milestone due
	Trigger types.MilestoneTrigger `json:"trigger_condition"`
}
