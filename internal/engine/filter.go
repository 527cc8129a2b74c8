package engine

import (
	"github.com/promokit/promokit/internal/types"
)

// ruleGate captures the per-rule eligibility checks whose failures the
// shipping pipeline still reports through zero-value candidates.
type ruleGate struct {
	MethodOK  bool
	MinimumOK bool
}

// Met reports whether every gated check passed
func (g ruleGate) Met() bool {
	return g.MethodOK && g.MinimumOK
}

// classEligible applies the checks that exclude a rule from a pipeline
// outright: the active flag, the requested discount classes, and the
// activation window against the shop's local date.
func classEligible(rule *types.DiscountRule, class types.DiscountClass, evalCtx types.EvaluationContext) bool {
	if !rule.Active {
		return false
	}
	if rule.DiscountClass != class || !evalCtx.HasClass(class) {
		return false
	}
	return rule.IsWithinWindow(evalCtx.LocalDate)
}

// gateRule applies the activation-code and minimum-amount checks. Rules
// failing these are dropped from the order/product pipelines but produce
// explanatory zero-value candidates in the shipping pipeline.
func gateRule(rule *types.DiscountRule, evalCtx types.EvaluationContext, facts CartFacts) ruleGate {
	methodOK := true
	if rule.IsCodeActivated() {
		// exact, case-sensitive match
		methodOK = evalCtx.DiscountCode != "" && evalCtx.DiscountCode == rule.DiscountCode
	}

	return ruleGate{
		MethodOK:  methodOK,
		MinimumOK: facts.CartTotal.GreaterThanOrEqual(rule.MinimumAmount),
	}
}
