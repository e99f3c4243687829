package bundle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMatchedBy(t *testing.T) {
	b := &Bundle{
		ID:                 "bndl_exec",
		MemberAddonIDs:     []string{"addon_assessment", "addon_onboarding"},
		DiscountPercentage: decimal.NewFromInt(10),
	}

	assert.True(t, b.MatchedBy([]string{"addon_assessment", "addon_onboarding"}))
	assert.True(t, b.MatchedBy([]string{"addon_onboarding", "addon_assessment", "addon_extra"}))
	assert.False(t, b.MatchedBy([]string{"addon_assessment"}))
	assert.False(t, b.MatchedBy(nil))
}

func TestBestMatchPrefersLargerMemberSet(t *testing.T) {
	small := &Bundle{
		ID:                 "bndl_small",
		MemberAddonIDs:     []string{"a", "b"},
		DiscountPercentage: decimal.NewFromInt(30),
	}
	large := &Bundle{
		ID:                 "bndl_large",
		MemberAddonIDs:     []string{"a", "b", "c"},
		DiscountPercentage: decimal.NewFromInt(10),
	}

	best := BestMatch([]string{"a", "b", "c"}, []*Bundle{small, large})
	assert.NotNil(t, best)
	assert.Equal(t, "bndl_large", best.ID)
}

func TestBestMatchBreaksSizeTieOnDiscount(t *testing.T) {
	cheap := &Bundle{
		ID:                 "bndl_cheap",
		MemberAddonIDs:     []string{"a", "b"},
		DiscountPercentage: decimal.NewFromInt(5),
	}
	rich := &Bundle{
		ID:                 "bndl_rich",
		MemberAddonIDs:     []string{"b", "c"},
		DiscountPercentage: decimal.NewFromInt(15),
	}

	best := BestMatch([]string{"a", "b", "c"}, []*Bundle{cheap, rich})
	assert.NotNil(t, best)
	assert.Equal(t, "bndl_rich", best.ID)

	// Order of candidates does not change the winner
	best = BestMatch([]string{"a", "b", "c"}, []*Bundle{rich, cheap})
	assert.Equal(t, "bndl_rich", best.ID)
}

func TestBestMatchNoMatch(t *testing.T) {
	b := &Bundle{
		ID:                 "bndl_exec",
		MemberAddonIDs:     []string{"a", "b"},
		DiscountPercentage: decimal.NewFromInt(10),
	}

	assert.Nil(t, BestMatch([]string{"a"}, []*Bundle{b}))
	assert.Nil(t, BestMatch([]string{"a", "b"}, nil))
}

func TestBundleValidate(t *testing.T) {
	testCases := []struct {
		name      string
		bundle    Bundle
		expectErr bool
	}{
		{
			name: "valid bundle",
			bundle: Bundle{
				ID:                 "bndl_ok",
				MemberAddonIDs:     []string{"a", "b"},
				DiscountPercentage: decimal.NewFromInt(10),
			},
		},
		{
			name: "missing id",
			bundle: Bundle{
				MemberAddonIDs:     []string{"a", "b"},
				DiscountPercentage: decimal.NewFromInt(10),
			},
			expectErr: true,
		},
		{
			name: "single member",
			bundle: Bundle{
				ID:                 "bndl_one",
				MemberAddonIDs:     []string{"a"},
				DiscountPercentage: decimal.NewFromInt(10),
			},
			expectErr: true,
		},
		{
			name: "duplicate members",
			bundle: Bundle{
				ID:                 "bndl_dup",
				MemberAddonIDs:     []string{"a", "a"},
				DiscountPercentage: decimal.NewFromInt(10),
			},
			expectErr: true,
		},
		{
			name: "discount of 100",
			bundle: Bundle{
				ID:                 "bndl_free",
				MemberAddonIDs:     []string{"a", "b"},
				DiscountPercentage: decimal.NewFromInt(100),
			},
			expectErr: true,
		},
		{
			name: "negative discount",
			bundle: Bundle{
				ID:                 "bndl_neg",
				MemberAddonIDs:     []string{"a", "b"},
				DiscountPercentage: decimal.NewFromInt(-1),
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.bundle.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
