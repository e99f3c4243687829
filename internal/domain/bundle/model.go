package bundle

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Bundle is a named set of addons sold together at a combined discount
type Bundle struct {
	// ID uniquely identifies the bundle ex bndl_exec_search
	ID string `json:"id"`

	// Name is the human readable bundle name
	Name string `json:"name"`

	// MemberAddonIDs are the addons that must all be selected for the
	// bundle to match. A bundle needs at least two members.
	MemberAddonIDs []string `json:"member_addon_ids"`

	// DiscountPercentage applies to the addon subtotal when matched
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

func (b *Bundle) Validate() error {
	if b.ID == "" {
		return ierr.NewError("bundle id is required").
			WithHint("Please provide a bundle identifier").
			Mark(ierr.ErrValidation)
	}

	if len(b.MemberAddonIDs) < 2 {
		return ierr.NewError("bundle needs at least two members").
			WithHintf("Bundle %s must reference at least two addons", b.ID).
			WithReportableDetails(map[string]any{
				"bundle_id": b.ID,
				"members":   b.MemberAddonIDs,
			}).
			Mark(ierr.ErrValidation)
	}

	if len(lo.Uniq(b.MemberAddonIDs)) != len(b.MemberAddonIDs) {
		return ierr.NewError("bundle members must be unique").
			WithHintf("Bundle %s lists the same addon twice", b.ID).
			WithReportableDetails(map[string]any{
				"bundle_id": b.ID,
				"members":   b.MemberAddonIDs,
			}).
			Mark(ierr.ErrValidation)
	}

	if b.DiscountPercentage.IsNegative() || b.DiscountPercentage.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return ierr.NewError("bundle discount must be between 0 and 100").
			WithHintf("Bundle %s discount must be in the range [0, 100)", b.ID).
			WithReportableDetails(map[string]any{
				"bundle_id": b.ID,
				"discount":  b.DiscountPercentage.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// MatchedBy reports whether every bundle member is present in the
// selected addon set.
func (b *Bundle) MatchedBy(selectedAddonIDs []string) bool {
	return lo.Every(selectedAddonIDs, b.MemberAddonIDs)
}

// BestMatch picks the bundle to apply for a selection. Ties resolve
// deterministically: the larger member set wins, then the higher
// discount. Returns nil when no bundle fully matches.
func BestMatch(selectedAddonIDs []string, bundles []*Bundle) *Bundle {
	var best *Bundle
	for _, b := range bundles {
		if !b.MatchedBy(selectedAddonIDs) {
			continue
		}
		if best == nil {
			best = b
			continue
		}
		if len(b.MemberAddonIDs) > len(best.MemberAddonIDs) {
			best = b
			continue
		}
		if len(b.MemberAddonIDs) == len(best.MemberAddonIDs) &&
			b.DiscountPercentage.GreaterThan(best.DiscountPercentage) {
			best = b
		}
	}
	return best
}
