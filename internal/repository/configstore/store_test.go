package configstore

import (
	"context"
	"testing"

	"github.com/hireloop/pricing-engine/internal/config"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *config.Catalog {
	return &config.Catalog{
		Addons: []config.CatalogAddon{
			{ID: "addon_report", Name: "Talent Report", Rate: "500.00", RateType: "FIXED", BundleEligible: true},
			{ID: "addon_onboarding", Name: "Onboarding Support", Rate: "2.5", RateType: "PERCENTAGE", BundleEligible: true},
		},
		Bundles: []config.CatalogBundle{
			{
				ID:                 "bndl_full",
				Name:               "Full Service",
				MemberAddonIDs:     []string{"addon_report", "addon_onboarding"},
				DiscountPercentage: "15",
			},
		},
		BusinessUnits: []config.CatalogBusinessUnit{
			{
				ID:   "bu_perm",
				Name: "Permanent Placement",
				Baseline: config.CatalogBaseline{
					Model:      "PERCENTAGE",
					Percentage: "18",
				},
				VolumeTiers: []config.CatalogTier{
					{MinThreshold: 1, DiscountPercentage: "0"},
					{MinThreshold: 5, DiscountPercentage: "5"},
				},
				MilestoneTemplate: []config.CatalogMilestone{
					{Label: "On signature", Percentage: "50", Trigger: "on_signature"},
					{Label: "On delivery", Percentage: "50", Trigger: "on_delivery"},
				},
			},
		},
		Coupons: []config.CatalogCoupon{
			{Code: "LAUNCH10", Type: "percentage", PercentageOff: "10"},
		},
	}
}

func TestNewStoreParsesCatalog(t *testing.T) {
	store, err := NewStore(validCatalog())
	require.NoError(t, err)
	ctx := context.Background()

	addons := store.Addons()
	require.Len(t, addons, 2)
	assert.Equal(t, "addon_report", addons[0].ID)
	assert.True(t, addons[0].Rate.Equal(decimal.RequireFromString("500.00")))

	bundles, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.True(t, bundles[0].DiscountPercentage.Equal(decimal.NewFromInt(15)))

	bl, err := store.Resolve(ctx, "bu_perm")
	require.NoError(t, err)
	assert.True(t, bl.Percentage.Equal(decimal.NewFromInt(18)))

	table, err := store.VolumeTable(ctx, "bu_perm")
	require.NoError(t, err)
	assert.True(t, table.DiscountFor(5).Equal(decimal.NewFromInt(5)))

	tmpl, err := store.GetTemplate(ctx, "bu_perm")
	require.NoError(t, err)
	assert.Len(t, tmpl.Entries, 2)

	c, err := store.GetByCode(ctx, "LAUNCH10")
	require.NoError(t, err)
	assert.True(t, c.PercentageOff.Equal(decimal.NewFromInt(10)))
}

func TestNewStoreMissingLookups(t *testing.T) {
	store, err := NewStore(validCatalog())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Resolve(ctx, "bu_unknown")
	assert.True(t, ierr.IsMissingBaseline(err))

	// Absent tier tables resolve to an empty table, not an error
	table, err := store.VolumeTable(ctx, "bu_unknown")
	require.NoError(t, err)
	assert.True(t, table.DiscountFor(100).IsZero())

	_, err = store.GetTemplate(ctx, "bu_unknown")
	assert.True(t, ierr.IsNotFound(err))

	_, err = store.GetByCode(ctx, "NOPE")
	assert.True(t, ierr.IsNotFound(err))
}

func TestNewStoreRejectsDuplicateAddon(t *testing.T) {
	catalog := validCatalog()
	catalog.Addons = append(catalog.Addons, catalog.Addons[0])

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsDuplicateAddon(err))
}

func TestNewStoreRejectsBundleWithUnknownMember(t *testing.T) {
	catalog := validCatalog()
	catalog.Bundles[0].MemberAddonIDs = []string{"addon_report", "addon_ghost"}

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsUnknownAddon(err))
}

func TestNewStoreRejectsIneligibleBundleMember(t *testing.T) {
	catalog := validCatalog()
	catalog.Addons[1].BundleEligible = false

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsValidation(err))
}

func TestNewStoreRejectsBadAmount(t *testing.T) {
	catalog := validCatalog()
	catalog.Addons[0].Rate = "five hundred"

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsValidation(err))
}

func TestNewStoreRejectsBrokenTemplate(t *testing.T) {
	catalog := validCatalog()
	catalog.BusinessUnits[0].MilestoneTemplate[0].Percentage = "40"

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsInvalidTemplate(err))
}

func TestNewStoreRejectsDescendingTiers(t *testing.T) {
	catalog := validCatalog()
	catalog.BusinessUnits[0].VolumeTiers = []config.CatalogTier{
		{MinThreshold: 5, DiscountPercentage: "5"},
		{MinThreshold: 1, DiscountPercentage: "10"},
	}

	_, err := NewStore(catalog)
	assert.True(t, ierr.IsValidation(err))
}
