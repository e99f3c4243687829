package tier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountFor(t *testing.T) {
	table := Table{
		{MinThreshold: 1, DiscountPercentage: decimal.Zero},
		{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(5)},
		{MinThreshold: 10, DiscountPercentage: decimal.NewFromInt(10)},
	}

	testCases := []struct {
		name     string
		quantity int
		expected string
	}{
		{name: "below lowest tier", quantity: 0, expected: "0"},
		{name: "at lowest tier", quantity: 1, expected: "0"},
		{name: "between tiers", quantity: 4, expected: "0"},
		{name: "at middle tier", quantity: 5, expected: "5"},
		{name: "inside middle tier", quantity: 9, expected: "5"},
		{name: "at top tier", quantity: 10, expected: "10"},
		{name: "beyond top tier", quantity: 500, expected: "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := table.DiscountFor(tc.quantity)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, got.String())
		})
	}
}

func TestDiscountForEmptyTable(t *testing.T) {
	var table Table
	assert.True(t, table.DiscountFor(100).IsZero())
}

func TestTableValidate(t *testing.T) {
	testCases := []struct {
		name      string
		table     Table
		expectErr bool
	}{
		{
			name: "valid ascending table",
			table: Table{
				{MinThreshold: 1, DiscountPercentage: decimal.Zero},
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(5)},
			},
		},
		{
			name:  "empty table is valid",
			table: Table{},
		},
		{
			name: "equal discounts across tiers are allowed",
			table: Table{
				{MinThreshold: 1, DiscountPercentage: decimal.NewFromInt(5)},
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(5)},
			},
		},
		{
			name: "duplicate thresholds rejected",
			table: Table{
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(5)},
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(10)},
			},
			expectErr: true,
		},
		{
			name: "descending thresholds rejected",
			table: Table{
				{MinThreshold: 10, DiscountPercentage: decimal.NewFromInt(5)},
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(10)},
			},
			expectErr: true,
		},
		{
			name: "decreasing discounts rejected",
			table: Table{
				{MinThreshold: 1, DiscountPercentage: decimal.NewFromInt(10)},
				{MinThreshold: 5, DiscountPercentage: decimal.NewFromInt(5)},
			},
			expectErr: true,
		},
		{
			name: "negative threshold rejected",
			table: Table{
				{MinThreshold: -1, DiscountPercentage: decimal.Zero},
			},
			expectErr: true,
		},
		{
			name: "discount of 100 rejected",
			table: Table{
				{MinThreshold: 1, DiscountPercentage: decimal.NewFromInt(100)},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
