package types

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/promokit/promokit/internal/errors"
)

// DiscountClass represents the checkout surface a discount rule applies to
type DiscountClass string

const (
	// DiscountClassOrder applies to the order subtotal
	DiscountClassOrder DiscountClass = "ORDER"
	// DiscountClassProduct applies to individual cart lines
	DiscountClassProduct DiscountClass = "PRODUCT"
	// DiscountClassShipping applies to delivery groups
	DiscountClassShipping DiscountClass = "SHIPPING"
)

func (c DiscountClass) String() string {
	return string(c)
}

func (c DiscountClass) Validate() error {
	allowed := []DiscountClass{
		DiscountClassOrder,
		DiscountClassProduct,
		DiscountClassShipping,
	}

	if !lo.Contains(allowed, c) {
		return ierr.NewError("invalid discount class").
			WithHint("Please provide a valid discount class").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
				"class":   c,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ActivationMethod represents how a discount rule is triggered at checkout
type ActivationMethod string

const (
	// ActivationMethodAutomatic applies the rule without any code
	ActivationMethodAutomatic ActivationMethod = "automatic"
	// ActivationMethodCode applies the rule only when a matching code is supplied
	ActivationMethodCode ActivationMethod = "code"
)

func (m ActivationMethod) String() string {
	return string(m)
}

func (m ActivationMethod) Validate() error {
	allowed := []ActivationMethod{
		ActivationMethodAutomatic,
		ActivationMethodCode,
	}

	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid activation method").
			WithHint("Activation method must be automatic or code").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
				"method":  m,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// DiscountRule is one merchant-authored discount configuration entry.
// Instances arrive as an opaque parsed list at the start of an evaluation
// and are treated as immutable for its duration.
type DiscountRule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	DiscountClass    DiscountClass    `json:"discountClass"`
	Active           bool             `json:"active"`
	ActivationMethod ActivationMethod `json:"activationMethod"`
	DiscountCode     string           `json:"discountCode"`
	MinimumAmount    decimal.Decimal  `json:"minimumAmount"`
	Percentage       *decimal.Decimal `json:"percentage,omitempty"`
	FixedAmount      *decimal.Decimal `json:"fixedAmount,omitempty"`
	Currency         string           `json:"currency,omitempty"`
	Conditions       []Condition      `json:"conditions"`
	// NotMetMessage overrides the generic shipping "conditions not met"
	// candidate message. Shipping rules only.
	NotMetMessage string `json:"notMetMessage,omitempty"`
	// StartsAt and EndsAt bound the activation window against the shop's
	// local date. Either side may be absent.
	StartsAt *Date `json:"startsAt,omitempty"`
	EndsAt   *Date `json:"endsAt,omitempty"`
}

// IsCodeActivated returns true when the rule requires a discount code
func (r *DiscountRule) IsCodeActivated() bool {
	return r.ActivationMethod == ActivationMethodCode
}

// HasFixedAmount returns true when the rule's value is a positive fixed amount
func (r *DiscountRule) HasFixedAmount() bool {
	return r.FixedAmount != nil && r.FixedAmount.GreaterThan(decimal.Zero)
}

// PercentageValue returns the configured percentage, or zero when absent
func (r *DiscountRule) PercentageValue() decimal.Decimal {
	if r.Percentage == nil {
		return decimal.Zero
	}
	return *r.Percentage
}

// IsWithinWindow checks the rule's activation window against the shop's
// local date. A missing date or an unbounded side passes.
func (r *DiscountRule) IsWithinWindow(localDate *Date) bool {
	if localDate == nil {
		return true
	}
	if r.StartsAt != nil && localDate.Before(r.StartsAt.Time) {
		return false
	}
	if r.EndsAt != nil && localDate.After(r.EndsAt.Time) {
		return false
	}
	return true
}

// DisplayMessage is the candidate message for a granted order or product
// discount: the authored description, or a generated default.
func (r *DiscountRule) DisplayMessage() string {
	if r.Description != "" {
		return r.Description
	}
	if r.Name != "" {
		return r.Name
	}
	return "Discount"
}
