package engine

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

// conditionsSatisfied evaluates a rule's conditions in author order,
// short-circuiting on the first failure. An empty or absent list is
// vacuously satisfied.
func (e *Engine) conditionsSatisfied(rule *types.DiscountRule, cart *types.Cart, facts CartFacts, conditions []types.Condition) bool {
	for i, cond := range conditions {
		if !e.evaluateCondition(cond, cart, facts) {
			e.log.Debugw("condition failed",
				"rule_id", rule.ID,
				"condition_index", i,
				"condition_type", cond.Type,
				"operator", cond.Operator)
			return false
		}
	}
	return true
}

// evaluateCondition evaluates one condition against the resolved facts.
// A condition whose required fact is undefined fails closed, except
// order_count, which substitutes zero prior orders.
func (e *Engine) evaluateCondition(cond types.Condition, cart *types.Cart, facts CartFacts) bool {
	switch cond.Type {
	case types.ConditionTypeCartTotal:
		return compareNumeric(facts.CartTotal, cond.Operator, cond.Value)

	case types.ConditionTypeCartQuantity:
		return compareNumeric(decimal.NewFromInt(facts.CartQuantity), cond.Operator, cond.Value)

	case types.ConditionTypeCartWeight:
		return compareNumeric(facts.CartWeight, cond.Operator, cond.Value)

	case types.ConditionTypeCountry:
		if facts.CustomerCountry == nil {
			return false
		}
		return compareString(*facts.CustomerCountry, cond.Operator, cond.Value)

	case types.ConditionTypePostalCode:
		if facts.CustomerPostalCode == nil {
			return false
		}
		return compareString(*facts.CustomerPostalCode, cond.Operator, cond.Value)

	case types.ConditionTypeCustomerTags:
		customer := cartCustomer(cart)
		if customer == nil {
			return false
		}
		switch cond.Operator {
		case types.ConditionOperatorEquals:
			return customer.HasAnyTag
		case types.ConditionOperatorNotEquals:
			return !customer.HasAnyTag
		default:
			return false
		}

	case types.ConditionTypeCustomerLoggedIn:
		isAuthenticated := cart.BuyerIdentity != nil && cart.BuyerIdentity.IsAuthenticated
		return compareLogin(isAuthenticated, cond.Operator)

	case types.ConditionTypeOrderCount:
		// no customer counts as zero prior orders rather than failing closed
		orders := int64(0)
		if customer := cartCustomer(cart); customer != nil {
			orders = customer.NumberOfOrders
		}
		return compareNumeric(decimal.NewFromInt(orders), cond.Operator, cond.Value)

	case types.ConditionTypeCartContains:
		if lo.Contains(types.CollectionOperators(), cond.Operator) {
			return compareCollections(cart.Lines, cond.Operator)
		}
		return compareProducts(cart.Lines, cond.Operator, cond.Values())

	default:
		// Unrecognized condition types pass, so rules authored against a
		// newer condition vocabulary do not disable older deployments.
		e.log.Warnw("treating unknown condition type as satisfied",
			"condition_type", cond.Type)
		return true
	}
}

func cartCustomer(cart *types.Cart) *types.Customer {
	if cart.BuyerIdentity == nil {
		return nil
	}
	return cart.BuyerIdentity.Customer
}
