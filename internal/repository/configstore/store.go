package configstore

import (
	"context"
	"time"

	"github.com/hireloop/pricing-engine/internal/config"
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	"github.com/hireloop/pricing-engine/internal/domain/tier"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/shopspring/decimal"
)

// Store serves the domain repository interfaces from the pricing catalog
// loaded at startup. The catalog is parsed and validated once, fail-fast;
// afterwards the store is read-only and safe for concurrent use.
type Store struct {
	addons        []addon.AddonDefinition
	bundles       []*bundle.Bundle
	baselines     map[string]*baseline.PricingBaseline
	volumeTiers   map[string]tier.Table
	durationTiers map[string]tier.Table
	templates     map[string]*billing.MilestoneTemplate
	coupons       map[string]*coupon.Coupon
}

var (
	_ baseline.Repository        = (*Store)(nil)
	_ tier.Repository            = (*Store)(nil)
	_ bundle.Repository          = (*Store)(nil)
	_ coupon.Repository          = (*Store)(nil)
	_ billing.TemplateRepository = (*Store)(nil)
)

// NewStore parses the raw catalog into domain objects. Any invalid entry
// aborts startup: a partially loaded catalog could misprice a contract.
func NewStore(catalog *config.Catalog) (*Store, error) {
	s := &Store{
		baselines:     make(map[string]*baseline.PricingBaseline),
		volumeTiers:   make(map[string]tier.Table),
		durationTiers: make(map[string]tier.Table),
		templates:     make(map[string]*billing.MilestoneTemplate),
		coupons:       make(map[string]*coupon.Coupon),
	}

	bundleEligible := make(map[string]bool)
	for _, raw := range catalog.Addons {
		def, err := parseAddon(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := bundleEligible[def.ID]; exists {
			return nil, ierr.NewError("duplicate addon in catalog").
				WithHintf("Addon %s is declared more than once", def.ID).
				Mark(ierr.ErrDuplicateAddon)
		}
		bundleEligible[def.ID] = def.BundleEligible
		s.addons = append(s.addons, *def)
	}

	for _, raw := range catalog.Bundles {
		b, err := parseBundle(raw)
		if err != nil {
			return nil, err
		}
		for _, member := range b.MemberAddonIDs {
			eligible, exists := bundleEligible[member]
			if !exists {
				return nil, ierr.NewError("bundle references unknown addon").
					WithHintf("Bundle %s references addon %s which is not in the catalog", b.ID, member).
					WithReportableDetails(map[string]any{
						"bundle_id": b.ID,
						"addon_id":  member,
					}).
					Mark(ierr.ErrUnknownAddon)
			}
			if !eligible {
				return nil, ierr.NewError("bundle references ineligible addon").
					WithHintf("Bundle %s references addon %s which is not bundle eligible", b.ID, member).
					WithReportableDetails(map[string]any{
						"bundle_id": b.ID,
						"addon_id":  member,
					}).
					Mark(ierr.ErrValidation)
			}
		}
		s.bundles = append(s.bundles, b)
	}

	for _, raw := range catalog.BusinessUnits {
		if raw.ID == "" {
			return nil, ierr.NewError("business unit id is required").
				WithHint("Every catalog business unit needs an id").
				Mark(ierr.ErrValidation)
		}

		bl, err := parseBaseline(raw.ID, raw.Baseline)
		if err != nil {
			return nil, err
		}
		s.baselines[raw.ID] = bl

		volume, err := parseTierTable(raw.VolumeTiers)
		if err != nil {
			return nil, err
		}
		s.volumeTiers[raw.ID] = volume

		duration, err := parseTierTable(raw.DurationTiers)
		if err != nil {
			return nil, err
		}
		s.durationTiers[raw.ID] = duration

		if len(raw.MilestoneTemplate) > 0 {
			tmpl, err := parseTemplate(raw.ID, raw.MilestoneTemplate)
			if err != nil {
				return nil, err
			}
			s.templates[raw.ID] = tmpl
		}
	}

	for _, raw := range catalog.Coupons {
		c, err := parseCoupon(raw)
		if err != nil {
			return nil, err
		}
		s.coupons[c.Code] = c
	}

	return s, nil
}

// Addons returns the catalog's addon definitions in declared order,
// ready to be registered with the addon registry.
func (s *Store) Addons() []addon.AddonDefinition {
	return s.addons
}

func (s *Store) Resolve(ctx context.Context, businessUnitID string) (*baseline.PricingBaseline, error) {
	bl, ok := s.baselines[businessUnitID]
	if !ok {
		return nil, ierr.NewError("no pricing baseline configured").
			WithHintf("Business unit %s has no pricing baseline", businessUnitID).
			WithReportableDetails(map[string]any{
				"business_unit_id": businessUnitID,
			}).
			Mark(ierr.ErrMissingBaseline)
	}
	return bl, nil
}

func (s *Store) VolumeTable(ctx context.Context, businessUnitID string) (tier.Table, error) {
	return s.volumeTiers[businessUnitID], nil
}

func (s *Store) DurationTable(ctx context.Context, businessUnitID string) (tier.Table, error) {
	return s.durationTiers[businessUnitID], nil
}

func (s *Store) List(ctx context.Context) ([]*bundle.Bundle, error) {
	return s.bundles, nil
}

func (s *Store) GetTemplate(ctx context.Context, businessUnitID string) (*billing.MilestoneTemplate, error) {
	tmpl, ok := s.templates[businessUnitID]
	if !ok {
		return nil, ierr.NewError("no milestone template configured").
			WithHintf("Business unit %s has no milestone template", businessUnitID).
			WithReportableDetails(map[string]any{
				"business_unit_id": businessUnitID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return tmpl, nil
}

func (s *Store) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	c, ok := s.coupons[code]
	if !ok {
		return nil, ierr.NewError("coupon not found").
			WithHintf("No coupon with code %s", code).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("Invalid decimal value for %s", field).
			WithReportableDetails(map[string]any{
				"field": field,
				"value": raw,
			}).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

func parseAddon(raw config.CatalogAddon) (*addon.AddonDefinition, error) {
	rate, err := parseAmount("addon.rate", raw.Rate)
	if err != nil {
		return nil, err
	}

	def := &addon.AddonDefinition{
		ID:             raw.ID,
		Name:           raw.Name,
		Rate:           rate,
		RateType:       types.AddonRateType(raw.RateType),
		BundleEligible: raw.BundleEligible,
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func parseBundle(raw config.CatalogBundle) (*bundle.Bundle, error) {
	discount, err := parseAmount("bundle.discount_percentage", raw.DiscountPercentage)
	if err != nil {
		return nil, err
	}

	b := &bundle.Bundle{
		ID:                 raw.ID,
		Name:               raw.Name,
		MemberAddonIDs:     raw.MemberAddonIDs,
		DiscountPercentage: discount,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func parseBaseline(businessUnitID string, raw config.CatalogBaseline) (*baseline.PricingBaseline, error) {
	basePrice, err := parseAmount("baseline.base_price", raw.BasePrice)
	if err != nil {
		return nil, err
	}
	percentage, err := parseAmount("baseline.percentage", raw.Percentage)
	if err != nil {
		return nil, err
	}

	bl := &baseline.PricingBaseline{
		BusinessUnitID: businessUnitID,
		Model:          types.PricingModel(raw.Model),
		BasePrice:      basePrice,
		Percentage:     percentage,
	}
	if err := bl.Validate(); err != nil {
		return nil, err
	}
	return bl, nil
}

func parseTierTable(raw []config.CatalogTier) (tier.Table, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	table := make(tier.Table, 0, len(raw))
	for _, t := range raw {
		discount, err := parseAmount("tier.discount_percentage", t.DiscountPercentage)
		if err != nil {
			return nil, err
		}
		table = append(table, tier.Tier{
			MinThreshold:       t.MinThreshold,
			DiscountPercentage: discount,
		})
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func parseTemplate(businessUnitID string, raw []config.CatalogMilestone) (*billing.MilestoneTemplate, error) {
	tmpl := &billing.MilestoneTemplate{BusinessUnitID: businessUnitID}
	for _, entry := range raw {
		percentage, err := parseAmount("milestone.percentage", entry.Percentage)
		if err != nil {
			return nil, err
		}
		tmpl.Entries = append(tmpl.Entries, billing.TemplateEntry{
			Label:      entry.Label,
			Percentage: percentage,
			Trigger:    types.MilestoneTrigger(entry.Trigger),
		})
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func parseCoupon(raw config.CatalogCoupon) (*coupon.Coupon, error) {
	amountOff, err := parseAmount("coupon.amount_off", raw.AmountOff)
	if err != nil {
		return nil, err
	}
	percentageOff, err := parseAmount("coupon.percentage_off", raw.PercentageOff)
	if err != nil {
		return nil, err
	}

	c := &coupon.Coupon{
		Code:           raw.Code,
		Type:           types.CouponType(raw.Type),
		AmountOff:      amountOff,
		PercentageOff:  percentageOff,
		MaxRedemptions: raw.MaxRedemptions,
		Status:         types.StatusPublished,
	}

	if raw.RedeemBefore != "" {
		redeemBefore, err := time.Parse(time.RFC3339, raw.RedeemBefore)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Invalid redeem_before date for coupon %s", raw.Code).
				Mark(ierr.ErrValidation)
		}
		c.RedeemBefore = &redeemBefore
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
