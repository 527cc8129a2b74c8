package types

import (
	"github.com/samber/lo"
)

// RuleValidationCode classifies a configuration problem found in a
// merchant-authored discount rule.
type RuleValidationCode string

const (
	RuleValidationCodeMissingID            RuleValidationCode = "RULE_MISSING_ID"
	RuleValidationCodeInvalidClass         RuleValidationCode = "RULE_INVALID_CLASS"
	RuleValidationCodeInvalidActivation    RuleValidationCode = "RULE_INVALID_ACTIVATION_METHOD"
	RuleValidationCodeMissingCode          RuleValidationCode = "RULE_MISSING_DISCOUNT_CODE"
	RuleValidationCodeNegativeMinimum      RuleValidationCode = "RULE_NEGATIVE_MINIMUM_AMOUNT"
	RuleValidationCodePercentageOutOfRange RuleValidationCode = "RULE_PERCENTAGE_OUT_OF_RANGE"
	RuleValidationCodeMissingValue         RuleValidationCode = "RULE_MISSING_VALUE"
	RuleValidationCodeInvalidCondition     RuleValidationCode = "RULE_INVALID_CONDITION"
	RuleValidationCodeInvalidWindow        RuleValidationCode = "RULE_INVALID_WINDOW"
)

func (c RuleValidationCode) String() string {
	return string(c)
}

// IsValueError returns true if the code concerns the rule's discount value
func (c RuleValidationCode) IsValueError() bool {
	valueErrors := []RuleValidationCode{
		RuleValidationCodePercentageOutOfRange,
		RuleValidationCodeMissingValue,
	}
	return lo.Contains(valueErrors, c)
}

// RuleValidationFinding is one configuration problem attributed to a rule
type RuleValidationFinding struct {
	RuleID  string             `json:"rule_id"`
	Code    RuleValidationCode `json:"code"`
	Message string             `json:"message"`
	Details map[string]any     `json:"details,omitempty"`
}
