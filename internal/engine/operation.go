package engine

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

const (
	// freeDeliveryMessage is shown on granted shipping candidates
	freeDeliveryMessage = "FREE DELIVERY"
	// notMetFallbackMessage is shown on shipping candidates whose rule has
	// no custom "not met" message configured
	notMetFallbackMessage = "Free delivery not yet available"
)

// buildOrderOperation assembles one order-level operation for a satisfied
// rule. The order subtotal is targeted without exclusions; the host's
// FIRST strategy picks among multiple satisfied order discounts.
func buildOrderOperation(rule *types.DiscountRule, percentage decimal.Decimal) types.Operation {
	return types.Operation{
		OrderDiscountsAdd: &types.OrderDiscountsAddOperation{
			Candidates: []types.OrderDiscountCandidate{
				{
					Message: rule.DisplayMessage(),
					Targets: []types.OrderDiscountTarget{
						{OrderSubtotal: &types.OrderSubtotalTarget{
							ExcludedCartLineIDs: []string{},
						}},
					},
					Value: types.NewPercentageValue(percentage),
				},
			},
			SelectionStrategy: types.SelectionStrategyFirst,
		},
	}
}

// buildProductOperation assembles one line-level operation for a satisfied
// rule, targeting every line of the cart.
func buildProductOperation(rule *types.DiscountRule, cart *types.Cart, percentage decimal.Decimal) types.Operation {
	targets := lo.Map(cart.Lines, func(line types.CartLine, _ int) types.ProductDiscountTarget {
		return types.ProductDiscountTarget{
			CartLine: &types.CartLineTarget{ID: line.ID},
		}
	})

	return types.Operation{
		ProductDiscountsAdd: &types.ProductDiscountsAddOperation{
			Candidates: []types.ProductDiscountCandidate{
				{
					Message: rule.DisplayMessage(),
					Targets: targets,
					Value:   types.NewPercentageValue(percentage),
				},
			},
			SelectionStrategy: types.SelectionStrategyFirst,
		},
	}
}

// buildDeliveryOperation aggregates all shipping candidates of one
// evaluation into a single operation with the ALL strategy.
func buildDeliveryOperation(candidates []types.DeliveryDiscountCandidate) types.Operation {
	return types.Operation{
		DeliveryDiscountsAdd: &types.DeliveryDiscountsAddOperation{
			Candidates:        candidates,
			SelectionStrategy: types.SelectionStrategyAll,
		},
	}
}

// buildDeliveryCandidate assembles one shipping candidate for a delivery
// group. Unmet rules pass a zero percentage and an explanatory message.
func buildDeliveryCandidate(group types.DeliveryGroup, message string, percentage decimal.Decimal) types.DeliveryDiscountCandidate {
	return types.DeliveryDiscountCandidate{
		Message: message,
		Targets: []types.DeliveryDiscountTarget{
			{DeliveryGroup: &types.DeliveryGroupTarget{ID: group.ID}},
		},
		Value: types.NewPercentageValue(percentage),
	}
}

// notMetMessage builds the message for a zero-value shipping candidate:
// the rule's custom text when configured, else the generic fallback, with
// a suffix naming the first failed check for checkout debugging.
func notMetMessage(rule *types.DiscountRule, gate ruleGate) string {
	base := rule.NotMetMessage
	if base == "" {
		base = notMetFallbackMessage
	}

	reason := "conditions not met"
	switch {
	case !gate.MethodOK:
		reason = "code required"
	case !gate.MinimumOK:
		reason = "minimum not reached"
	}

	return base + " [" + reason + "]"
}
