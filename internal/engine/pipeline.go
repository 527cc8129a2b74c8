// Package engine implements the discount-rule evaluation core: a
// deterministic, side-effect-free computation from a cart snapshot and a
// merchant rule set to a list of discount operations. Two pipelines share
// the same condition-evaluation and attribute-resolution code; one covers
// order and product discounts, the other shipping discounts. The engine
// performs no I/O, never mutates its inputs, and never returns an error:
// every valid-shaped input yields a well-formed result.
package engine

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/domain/ruleset"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/types"
)

// Engine evaluates discount rules against cart snapshots. It is stateless
// and safe for concurrent use; the injected logger traces evaluation
// decisions and defaults to a nop.
type Engine struct {
	log *logger.Logger
}

// New creates an Engine. Passing a nil logger disables tracing.
func New(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Engine{log: log}
}

// EvaluateCartDiscounts runs the order/product pipeline: order-level
// operations for every satisfied ORDER rule, then line-level operations
// for every satisfied PRODUCT rule, in rule-set order within each class.
func (e *Engine) EvaluateCartDiscounts(cart *types.Cart, rawRuleSet string, evalCtx types.EvaluationContext) *types.EvaluationResult {
	if cart.IsEmpty() {
		return types.NewEvaluationResult(nil)
	}
	if !evalCtx.HasAnyClass(types.DiscountClassOrder, types.DiscountClassProduct) {
		return types.NewEvaluationResult(nil)
	}

	rules := ruleset.Parse(rawRuleSet, e.log)
	facts := ResolveFacts(cart)
	operations := []types.Operation{}

	for i := range rules {
		rule := &rules[i]
		if !classEligible(rule, types.DiscountClassOrder, evalCtx) {
			continue
		}
		if !gateRule(rule, evalCtx, facts).Met() {
			continue
		}
		// Order-wide discounts are not geography-gated: country and
		// postal_code conditions are stripped before evaluation even when
		// the merchant authored them.
		conditions := lo.Reject(rule.Conditions, func(c types.Condition, _ int) bool {
			return c.Type.IsGeographic()
		})
		if !e.conditionsSatisfied(rule, cart, facts, conditions) {
			continue
		}

		percentage := realizedPercentage(rule, facts.CartTotal)
		operations = append(operations, buildOrderOperation(rule, percentage))
		e.log.Debugw("order discount granted",
			"rule_id", rule.ID, "percentage", percentage)
	}

	for i := range rules {
		rule := &rules[i]
		if !classEligible(rule, types.DiscountClassProduct, evalCtx) {
			continue
		}
		if !gateRule(rule, evalCtx, facts).Met() {
			continue
		}
		if !e.conditionsSatisfied(rule, cart, facts, rule.Conditions) {
			continue
		}

		percentage := realizedPercentage(rule, facts.CartTotal)
		operations = append(operations, buildProductOperation(rule, cart, percentage))
		e.log.Debugw("product discount granted",
			"rule_id", rule.ID, "percentage", percentage)
	}

	return types.NewEvaluationResult(operations)
}

// EvaluateDeliveryDiscounts runs the shipping pipeline. One candidate is
// emitted per delivery group and class-eligible rule: full value with a
// "FREE DELIVERY" message when the rule is met, zero value with an
// explanatory message when the code, minimum, or conditions are not, so
// checkout can tell the buyer why free shipping is not yet granted. All
// candidates share a single operation with the ALL strategy.
func (e *Engine) EvaluateDeliveryDiscounts(cart *types.Cart, rawRuleSet string, evalCtx types.EvaluationContext) *types.EvaluationResult {
	if cart.IsEmpty() {
		return types.NewEvaluationResult(nil)
	}
	if !evalCtx.HasClass(types.DiscountClassShipping) {
		return types.NewEvaluationResult(nil)
	}

	rules := ruleset.Parse(rawRuleSet, e.log)
	facts := ResolveFacts(cart)
	candidates := []types.DeliveryDiscountCandidate{}

	for _, group := range cart.DeliveryGroups {
		for i := range rules {
			rule := &rules[i]
			if !classEligible(rule, types.DiscountClassShipping, evalCtx) {
				continue
			}

			gate := gateRule(rule, evalCtx, facts)
			satisfied := e.conditionsSatisfied(rule, cart, facts, rule.Conditions)

			if gate.Met() && satisfied {
				percentage := realizedPercentage(rule, facts.CartTotal)
				candidates = append(candidates,
					buildDeliveryCandidate(group, freeDeliveryMessage, percentage))
				e.log.Debugw("delivery discount granted",
					"rule_id", rule.ID,
					"delivery_group_id", group.ID,
					"percentage", percentage)
				continue
			}

			candidates = append(candidates,
				buildDeliveryCandidate(group, notMetMessage(rule, gate), decimal.Zero))
			e.log.Debugw("delivery discount withheld",
				"rule_id", rule.ID,
				"delivery_group_id", group.ID,
				"method_ok", gate.MethodOK,
				"minimum_ok", gate.MinimumOK,
				"conditions_ok", satisfied)
		}
	}

	if len(candidates) == 0 {
		return types.NewEvaluationResult(nil)
	}

	return types.NewEvaluationResult([]types.Operation{
		buildDeliveryOperation(candidates),
	})
}
