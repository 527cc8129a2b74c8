package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/promokit/promokit/internal/testutil"
	"github.com/promokit/promokit/internal/types"
)

func fixedRule(class types.DiscountClass, amount string) *types.DiscountRule {
	return &types.DiscountRule{
		DiscountClass: class,
		FixedAmount:   testutil.Percentage(amount),
	}
}

func TestRealizedPercentage_FixedAmount(t *testing.T) {
	tests := []struct {
		name      string
		rule      *types.DiscountRule
		cartTotal string
		want      string
	}{
		{
			name:      "fixed amount as share of cart total",
			rule:      fixedRule(types.DiscountClassOrder, "20"),
			cartTotal: "50",
			want:      "40",
		},
		{
			name:      "fixed amount above total clamps to 100",
			rule:      fixedRule(types.DiscountClassProduct, "80"),
			cartTotal: "50",
			want:      "100",
		},
		{
			name:      "zero cart total yields zero",
			rule:      fixedRule(types.DiscountClassOrder, "20"),
			cartTotal: "0",
			want:      "0",
		},
		{
			name:      "fixed amount on shipping is always full value",
			rule:      fixedRule(types.DiscountClassShipping, "5"),
			cartTotal: "50",
			want:      "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := realizedPercentage(tt.rule, decimal.RequireFromString(tt.cartTotal))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, got)
		})
	}
}

func TestRealizedPercentage_Percentage(t *testing.T) {
	tests := []struct {
		name       string
		percentage *decimal.Decimal
		want       string
	}{
		{name: "direct percentage", percentage: testutil.Percentage("10"), want: "10"},
		{name: "percentage above 100 clamps", percentage: testutil.Percentage("150"), want: "100"},
		{name: "negative percentage clamps to zero", percentage: testutil.Percentage("-5"), want: "0"},
		{name: "absent value yields zero", percentage: nil, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &types.DiscountRule{
				DiscountClass: types.DiscountClassOrder,
				Percentage:    tt.percentage,
			}
			got := realizedPercentage(rule, decimal.NewFromInt(100))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, got)
		})
	}
}

func TestRealizedPercentage_NonPositiveFixedAmountFallsBack(t *testing.T) {
	// a zero fixed amount is not "fixed amount configured"; the percentage
	// value applies instead
	zero := decimal.Zero
	rule := &types.DiscountRule{
		DiscountClass: types.DiscountClassOrder,
		FixedAmount:   &zero,
		Percentage:    testutil.Percentage("15"),
	}

	got := realizedPercentage(rule, decimal.NewFromInt(100))
	assert.True(t, got.Equal(decimal.NewFromInt(15)))
}
