package engine

import (
	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

var hundred = decimal.NewFromInt(100)

// realizedPercentage converts a rule's configured value into the percentage
// actually applied. Fixed amounts become a share of the cart total for
// order and product discounts, and always 100 (free delivery) for shipping.
// The result is clamped into [0, 100].
func realizedPercentage(rule *types.DiscountRule, cartTotal decimal.Decimal) decimal.Decimal {
	if rule.HasFixedAmount() {
		if rule.DiscountClass == types.DiscountClassShipping {
			return hundred
		}
		if cartTotal.IsZero() {
			return decimal.Zero
		}
		return clampPercentage(rule.FixedAmount.Div(cartTotal).Mul(hundred))
	}

	return clampPercentage(rule.PercentageValue())
}

func clampPercentage(value decimal.Decimal) decimal.Decimal {
	if value.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if value.GreaterThan(hundred) {
		return hundred
	}
	return value
}
