package ruleset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

var hundred = decimal.NewFromInt(100)

// Validate reports configuration problems in a parsed rule set. It is
// authoring-time tooling: the runtime evaluation path never consults it
// and stays permissive regardless of what it would report.
func Validate(rules []types.DiscountRule) []types.RuleValidationFinding {
	findings := []types.RuleValidationFinding{}
	for i := range rules {
		findings = append(findings, validateRule(&rules[i])...)
	}
	return findings
}

func validateRule(r *types.DiscountRule) []types.RuleValidationFinding {
	var findings []types.RuleValidationFinding

	add := func(code types.RuleValidationCode, message string, details map[string]any) {
		findings = append(findings, types.RuleValidationFinding{
			RuleID:  r.ID,
			Code:    code,
			Message: message,
			Details: details,
		})
	}

	if r.ID == "" {
		add(types.RuleValidationCodeMissingID, "rule has no id", nil)
	}

	if err := r.DiscountClass.Validate(); err != nil {
		add(types.RuleValidationCodeInvalidClass,
			fmt.Sprintf("unknown discount class %q", r.DiscountClass),
			map[string]any{"class": r.DiscountClass.String()})
	}

	if err := r.ActivationMethod.Validate(); err != nil {
		add(types.RuleValidationCodeInvalidActivation,
			fmt.Sprintf("unknown activation method %q", r.ActivationMethod),
			map[string]any{"method": r.ActivationMethod.String()})
	} else if r.IsCodeActivated() && r.DiscountCode == "" {
		add(types.RuleValidationCodeMissingCode,
			"code-activated rule has no discount code", nil)
	}

	if r.MinimumAmount.IsNegative() {
		add(types.RuleValidationCodeNegativeMinimum,
			"minimum amount must not be negative",
			map[string]any{"minimum_amount": r.MinimumAmount.String()})
	}

	if r.Percentage == nil && !r.HasFixedAmount() {
		add(types.RuleValidationCodeMissingValue,
			"rule has neither a percentage nor a positive fixed amount", nil)
	}
	if r.Percentage != nil &&
		(r.Percentage.IsNegative() || r.Percentage.GreaterThan(hundred)) {
		add(types.RuleValidationCodePercentageOutOfRange,
			"percentage must be between 0 and 100",
			map[string]any{"percentage": r.Percentage.String()})
	}

	if r.StartsAt != nil && r.EndsAt != nil && r.EndsAt.Before(r.StartsAt.Time) {
		add(types.RuleValidationCodeInvalidWindow,
			"activation window ends before it starts",
			map[string]any{
				"starts_at": r.StartsAt.String(),
				"ends_at":   r.EndsAt.String(),
			})
	}

	for i, cond := range r.Conditions {
		if err := cond.Validate(); err != nil {
			add(types.RuleValidationCodeInvalidCondition,
				fmt.Sprintf("condition %d is invalid: %s/%s", i, cond.Type, cond.Operator),
				map[string]any{
					"index":    i,
					"type":     cond.Type.String(),
					"operator": cond.Operator.String(),
				})
		}
	}

	return findings
}
