package dto

import (
	ierr "github.com/promokit/promokit/internal/errors"
	"github.com/promokit/promokit/internal/types"
	"github.com/promokit/promokit/internal/validator"
)

// EvaluateCartRequest is one engine invocation: the cart snapshot, the
// shop's configuration record, the requested discount classes, and the
// discount code supplied at checkout, if any.
type EvaluateCartRequest struct {
	Cart                   types.Cart      `json:"cart"`
	Shop                   ShopInput       `json:"shop"`
	Discount               DiscountContext `json:"discount"`
	TriggeringDiscountCode string          `json:"triggeringDiscountCode,omitempty"`
}

// ShopInput carries the merchant configuration attached to the shop
type ShopInput struct {
	// RuleSet is the JSON-serialized rule-set record. Malformed content
	// degrades to an empty rule set at evaluation time.
	RuleSet   string         `json:"ruleSet"`
	LocalTime LocalTimeInput `json:"localTime"`
}

// LocalTimeInput is the shop's local time at invocation
type LocalTimeInput struct {
	Date string `json:"date,omitempty"`
}

// DiscountContext names the discount classes the host wants evaluated
type DiscountContext struct {
	DiscountClasses []types.DiscountClass `json:"discountClasses"`
}

func (r *EvaluateCartRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, class := range r.Discount.DiscountClasses {
		if err := class.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToEvaluationContext converts the request envelope into the engine's
// evaluation context. An unparseable local date is dropped rather than
// rejected; the activation-window check then passes every rule, which is
// the safe degradation for a clock fact.
func (r *EvaluateCartRequest) ToEvaluationContext() types.EvaluationContext {
	evalCtx := types.EvaluationContext{
		DiscountClasses: r.Discount.DiscountClasses,
		DiscountCode:    r.TriggeringDiscountCode,
	}

	if r.Shop.LocalTime.Date != "" {
		if date, err := types.ParseDate(r.Shop.LocalTime.Date); err == nil {
			evalCtx.LocalDate = &date
		}
	}

	return evalCtx
}

// EvaluateCartResponse is the engine output: the accumulated operation
// list, empty when nothing qualifies.
type EvaluateCartResponse struct {
	Operations []types.Operation `json:"operations"`
}

// ValidateRuleSetRequest asks for authoring-time validation of a rule-set
// record.
type ValidateRuleSetRequest struct {
	RuleSet string `json:"ruleSet"`
}

func (r *ValidateRuleSetRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.RuleSet == "" {
		return ierr.NewError("rule set is required").
			WithHint("Provide the JSON rule set record to validate").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidateRuleSetResponse reports configuration findings per rule
type ValidateRuleSetResponse struct {
	Valid     bool                          `json:"valid"`
	RuleCount int                           `json:"rule_count"`
	Findings  []types.RuleValidationFinding `json:"findings"`
}
