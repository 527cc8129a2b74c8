package engine

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

// compareNumeric evaluates a numeric comparison between a resolved fact and
// the condition's raw value. An unparseable value fails closed.
func compareNumeric(fact decimal.Decimal, op types.ConditionOperator, raw string) bool {
	threshold, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	switch op {
	case types.ConditionOperatorGreaterThan:
		return fact.GreaterThan(threshold)
	case types.ConditionOperatorGreaterThanOrEqual:
		return fact.GreaterThanOrEqual(threshold)
	case types.ConditionOperatorLessThan:
		return fact.LessThan(threshold)
	case types.ConditionOperatorLessThanOrEqual:
		return fact.LessThanOrEqual(threshold)
	case types.ConditionOperatorEqual:
		return fact.Equal(threshold)
	case types.ConditionOperatorNotEqual:
		return !fact.Equal(threshold)
	default:
		return false
	}
}

// compareString evaluates a case-insensitive string comparison
func compareString(fact string, op types.ConditionOperator, value string) bool {
	fact = strings.ToLower(strings.TrimSpace(fact))
	value = strings.ToLower(strings.TrimSpace(value))

	switch op {
	case types.ConditionOperatorEquals:
		return fact == value
	case types.ConditionOperatorNotEquals:
		return fact != value
	case types.ConditionOperatorContains:
		return strings.Contains(fact, value)
	case types.ConditionOperatorNotContains:
		return !strings.Contains(fact, value)
	default:
		return false
	}
}

// compareLogin evaluates a login-state operator against the buyer's
// authentication flag.
func compareLogin(isAuthenticated bool, op types.ConditionOperator) bool {
	switch op {
	case types.ConditionOperatorIsLoggedIn:
		return isAuthenticated
	case types.ConditionOperatorIsNotLoggedIn:
		return !isAuthenticated
	default:
		return false
	}
}

// compareProducts evaluates the product-identity family of cart_contains
// operators against the product ids present in the cart.
func compareProducts(lines []types.CartLine, op types.ConditionOperator, wanted []string) bool {
	inCart := lo.Map(lines, func(line types.CartLine, _ int) string {
		return line.Merchandise.Product.ID
	})

	switch op {
	case types.ConditionOperatorOnlyTheseProducts:
		return len(inCart) > 0 && lo.Every(wanted, inCart)
	case types.ConditionOperatorAtLeastOneOfThese:
		return lo.Some(wanted, inCart)
	case types.ConditionOperatorAllOfTheseProducts:
		return len(wanted) > 0 && lo.Every(inCart, wanted)
	case types.ConditionOperatorNoneOfTheseProducts:
		return lo.None(wanted, inCart)
	default:
		return false
	}
}

// compareCollections evaluates the collection-membership family of
// cart_contains operators using the per-line membership flag precomputed
// by the cart data provider.
func compareCollections(lines []types.CartLine, op types.ConditionOperator) bool {
	inAnyCollection := func(line types.CartLine) bool {
		return line.Merchandise.Product.InAnyCollection
	}

	switch op {
	case types.ConditionOperatorOnlyTheseCollections:
		return len(lines) > 0 && lo.EveryBy(lines, inAnyCollection)
	case types.ConditionOperatorAtLeastOneCollection:
		return lo.SomeBy(lines, inAnyCollection)
	case types.ConditionOperatorNoProductsFromCollections:
		return lo.NoneBy(lines, inAnyCollection)
	default:
		return false
	}
}
