package engine

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promokit/promokit/internal/testutil"
	"github.com/promokit/promokit/internal/types"
)

func orderRule(id string, percentage string) types.DiscountRule {
	return types.DiscountRule{
		ID:               id,
		Description:      "Order discount " + id,
		DiscountClass:    types.DiscountClassOrder,
		Active:           true,
		ActivationMethod: types.ActivationMethodAutomatic,
		Percentage:       testutil.Percentage(percentage),
	}
}

func productRule(id string, percentage string) types.DiscountRule {
	rule := orderRule(id, percentage)
	rule.Description = "Product discount " + id
	rule.DiscountClass = types.DiscountClassProduct
	return rule
}

func shippingRule(id string, percentage string) types.DiscountRule {
	rule := orderRule(id, percentage)
	rule.Description = "Shipping discount " + id
	rule.DiscountClass = types.DiscountClassShipping
	return rule
}

func standardCart() types.Cart {
	return testutil.NewCartBuilder().
		WithLine("line-1", 1, "100.00").
		WithDeliveryGroup("dg-1", "PL", "00-950", "").
		Build()
}

func ctxWith(classes ...types.DiscountClass) types.EvaluationContext {
	return types.EvaluationContext{DiscountClasses: classes}
}

func TestEvaluateCartDiscounts_NoClassesRequested(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rules := testutil.RuleSetJSON(orderRule("r1", "10"))

	result := e.EvaluateCartDiscounts(&cart, rules, ctxWith())

	assert.Empty(t, result.Operations)
}

func TestEvaluateCartDiscounts_EmptyCart(t *testing.T) {
	e := New(nil)
	cart := types.Cart{}
	rules := testutil.RuleSetJSON(orderRule("r1", "10"))

	result := e.EvaluateCartDiscounts(&cart, rules, ctxWith(types.DiscountClassOrder))

	assert.Empty(t, result.Operations)
}

func TestEvaluateCartDiscounts_OrderRule(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rules := testutil.RuleSetJSON(orderRule("r1", "10"))

	result := e.EvaluateCartDiscounts(&cart, rules, ctxWith(types.DiscountClassOrder))

	require.Len(t, result.Operations, 1)
	op := result.Operations[0].OrderDiscountsAdd
	require.NotNil(t, op)
	assert.Equal(t, types.SelectionStrategyFirst, op.SelectionStrategy)
	require.Len(t, op.Candidates, 1)
	assert.Equal(t, "Order discount r1", op.Candidates[0].Message)
	assert.True(t, op.Candidates[0].Value.Percentage.Value.Equal(decimal.NewFromInt(10)))
	require.Len(t, op.Candidates[0].Targets, 1)
	assert.NotNil(t, op.Candidates[0].Targets[0].OrderSubtotal)
}

func TestEvaluateCartDiscounts_OrderThenProduct(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	// authored product-first to prove output order is class-pipeline order
	rules := testutil.RuleSetJSON(productRule("r2", "20"), orderRule("r1", "10"))

	result := e.EvaluateCartDiscounts(&cart, rules,
		ctxWith(types.DiscountClassOrder, types.DiscountClassProduct))

	require.Len(t, result.Operations, 2)
	require.NotNil(t, result.Operations[0].OrderDiscountsAdd)
	require.NotNil(t, result.Operations[1].ProductDiscountsAdd)

	product := result.Operations[1].ProductDiscountsAdd
	require.Len(t, product.Candidates, 1)
	assert.True(t, product.Candidates[0].Value.Percentage.Value.Equal(decimal.NewFromInt(20)))
	require.Len(t, product.Candidates[0].Targets, 1)
	assert.Equal(t, "line-1", product.Candidates[0].Targets[0].CartLine.ID)
}

func TestEvaluateCartDiscounts_EmptyRuleSet(t *testing.T) {
	e := New(nil)
	cart := standardCart()

	for _, raw := range []string{"[]", "", "not json at all", `{"broken":`} {
		result := e.EvaluateCartDiscounts(&cart, raw,
			ctxWith(types.DiscountClassOrder, types.DiscountClassProduct))
		assert.Empty(t, result.Operations, "raw=%q", raw)
	}
}

func TestEvaluateCartDiscounts_CodeGate(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rule := orderRule("r1", "10")
	rule.ActivationMethod = types.ActivationMethodCode
	rule.DiscountCode = "SAVE10"
	rules := testutil.RuleSetJSON(rule)

	noCode := e.EvaluateCartDiscounts(&cart, rules, ctxWith(types.DiscountClassOrder))
	assert.Empty(t, noCode.Operations)

	wrongCase := e.EvaluateCartDiscounts(&cart, rules, types.EvaluationContext{
		DiscountClasses: []types.DiscountClass{types.DiscountClassOrder},
		DiscountCode:    "save10",
	})
	assert.Empty(t, wrongCase.Operations, "code match is case-sensitive")

	matching := e.EvaluateCartDiscounts(&cart, rules, types.EvaluationContext{
		DiscountClasses: []types.DiscountClass{types.DiscountClassOrder},
		DiscountCode:    "SAVE10",
	})
	assert.Len(t, matching.Operations, 1)
}

func TestEvaluateCartDiscounts_MinimumAmountGate(t *testing.T) {
	e := New(nil)
	cart := standardCart() // total 100.00
	rule := orderRule("r1", "10")
	rule.MinimumAmount = decimal.NewFromInt(150)
	rules := testutil.RuleSetJSON(rule)

	result := e.EvaluateCartDiscounts(&cart, rules, ctxWith(types.DiscountClassOrder))

	assert.Empty(t, result.Operations)
}

func TestEvaluateCartDiscounts_OrderStripsGeographicConditions(t *testing.T) {
	e := New(nil)
	// no resolvable postal code, so the condition would fail closed
	cart := testutil.NewCartBuilder().WithLine("line-1", 1, "100").Build()

	geoConditions := []types.Condition{
		{Type: types.ConditionTypeCountry, Operator: types.ConditionOperatorEquals, Value: "PL"},
		{Type: types.ConditionTypePostalCode, Operator: types.ConditionOperatorEquals, Value: "00-950"},
	}

	order := orderRule("r1", "10")
	order.Conditions = geoConditions
	product := productRule("r2", "20")
	product.Conditions = geoConditions
	rules := testutil.RuleSetJSON(order, product)

	result := e.EvaluateCartDiscounts(&cart, rules,
		ctxWith(types.DiscountClassOrder, types.DiscountClassProduct))

	// the order rule ignores geography, the product rule does not
	require.Len(t, result.Operations, 1)
	assert.NotNil(t, result.Operations[0].OrderDiscountsAdd)
}

func TestEvaluateCartDiscounts_InactiveAndWindowedRules(t *testing.T) {
	e := New(nil)
	cart := standardCart()

	inactive := orderRule("r1", "10")
	inactive.Active = false

	windowed := orderRule("r2", "10")
	starts, err := types.ParseDate("2026-06-01")
	require.NoError(t, err)
	ends, err := types.ParseDate("2026-06-30")
	require.NoError(t, err)
	windowed.StartsAt = &starts
	windowed.EndsAt = &ends

	rules := testutil.RuleSetJSON(inactive, windowed)

	localDate, err := types.ParseDate("2026-07-15")
	require.NoError(t, err)
	result := e.EvaluateCartDiscounts(&cart, rules, types.EvaluationContext{
		DiscountClasses: []types.DiscountClass{types.DiscountClassOrder},
		LocalDate:       &localDate,
	})
	assert.Empty(t, result.Operations)

	inWindow, err := types.ParseDate("2026-06-15")
	require.NoError(t, err)
	result = e.EvaluateCartDiscounts(&cart, rules, types.EvaluationContext{
		DiscountClasses: []types.DiscountClass{types.DiscountClassOrder},
		LocalDate:       &inWindow,
	})
	assert.Len(t, result.Operations, 1)
}

func TestEvaluateDeliveryDiscounts_FreeDelivery(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rules := testutil.RuleSetJSON(shippingRule("r1", "100"))

	result := e.EvaluateDeliveryDiscounts(&cart, rules, ctxWith(types.DiscountClassShipping))

	require.Len(t, result.Operations, 1)
	op := result.Operations[0].DeliveryDiscountsAdd
	require.NotNil(t, op)
	assert.Equal(t, types.SelectionStrategyAll, op.SelectionStrategy)
	require.Len(t, op.Candidates, 1)
	candidate := op.Candidates[0]
	assert.Equal(t, "FREE DELIVERY", candidate.Message)
	assert.True(t, candidate.Value.Percentage.Value.Equal(decimal.NewFromInt(100)))
	require.Len(t, candidate.Targets, 1)
	assert.Equal(t, "dg-1", candidate.Targets[0].DeliveryGroup.ID)
}

func TestEvaluateDeliveryDiscounts_ClassMismatch(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rules := testutil.RuleSetJSON(shippingRule("r1", "100"))

	result := e.EvaluateDeliveryDiscounts(&cart, rules, ctxWith(types.DiscountClassOrder))

	assert.Empty(t, result.Operations)
}

func TestEvaluateDeliveryDiscounts_UnmetRulesStillExplain(t *testing.T) {
	e := New(nil)
	cart := standardCart() // total 100.00

	coded := shippingRule("r1", "100")
	coded.ActivationMethod = types.ActivationMethodCode
	coded.DiscountCode = "FREESHIP"
	coded.NotMetMessage = "Use code FREESHIP for free delivery"

	belowMinimum := shippingRule("r2", "100")
	belowMinimum.MinimumAmount = decimal.NewFromInt(200)

	conditioned := shippingRule("r3", "100")
	conditioned.Conditions = []types.Condition{
		{Type: types.ConditionTypeCartQuantity, Operator: types.ConditionOperatorGreaterThanOrEqual, Value: "5"},
	}

	rules := testutil.RuleSetJSON(coded, belowMinimum, conditioned)

	result := e.EvaluateDeliveryDiscounts(&cart, rules, ctxWith(types.DiscountClassShipping))

	require.Len(t, result.Operations, 1)
	op := result.Operations[0].DeliveryDiscountsAdd
	require.Len(t, op.Candidates, 3)

	for _, candidate := range op.Candidates {
		assert.True(t, candidate.Value.Percentage.Value.IsZero())
	}
	assert.Contains(t, op.Candidates[0].Message, "Use code FREESHIP for free delivery")
	assert.Contains(t, op.Candidates[0].Message, "code required")
	assert.Contains(t, op.Candidates[1].Message, "minimum not reached")
	assert.Contains(t, op.Candidates[2].Message, "conditions not met")
}

func TestEvaluateDeliveryDiscounts_FixedAmountMeansFullValue(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rule := shippingRule("r1", "0")
	rule.Percentage = nil
	rule.FixedAmount = testutil.Percentage("7.50")
	rules := testutil.RuleSetJSON(rule)

	result := e.EvaluateDeliveryDiscounts(&cart, rules, ctxWith(types.DiscountClassShipping))

	require.Len(t, result.Operations, 1)
	candidate := result.Operations[0].DeliveryDiscountsAdd.Candidates[0]
	assert.True(t, candidate.Value.Percentage.Value.Equal(decimal.NewFromInt(100)))
}

func TestEvaluateDeliveryDiscounts_NoDeliveryGroups(t *testing.T) {
	e := New(nil)
	cart := testutil.NewCartBuilder().WithLine("line-1", 1, "100").Build()
	rules := testutil.RuleSetJSON(shippingRule("r1", "100"))

	result := e.EvaluateDeliveryDiscounts(&cart, rules, ctxWith(types.DiscountClassShipping))

	assert.Empty(t, result.Operations)
}

func TestEvaluate_Idempotence(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	rules := testutil.RuleSetJSON(
		orderRule("r1", "10"),
		productRule("r2", "20"),
		shippingRule("r3", "100"),
	)
	evalCtx := ctxWith(types.DiscountClassOrder, types.DiscountClassProduct, types.DiscountClassShipping)

	first := e.EvaluateCartDiscounts(&cart, rules, evalCtx)
	second := e.EvaluateCartDiscounts(&cart, rules, evalCtx)
	assert.Equal(t, mustJSON(t, first), mustJSON(t, second))

	firstDelivery := e.EvaluateDeliveryDiscounts(&cart, rules, evalCtx)
	secondDelivery := e.EvaluateDeliveryDiscounts(&cart, rules, evalCtx)
	assert.Equal(t, mustJSON(t, firstDelivery), mustJSON(t, secondDelivery))
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	e := New(nil)
	cart := standardCart()
	before := mustJSON(t, cart)
	rules := testutil.RuleSetJSON(orderRule("r1", "10"), shippingRule("r2", "100"))
	evalCtx := ctxWith(types.DiscountClassOrder, types.DiscountClassShipping)

	e.EvaluateCartDiscounts(&cart, rules, evalCtx)
	e.EvaluateDeliveryDiscounts(&cart, rules, evalCtx)

	assert.Equal(t, before, mustJSON(t, cart))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
