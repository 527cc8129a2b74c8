package types

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/promokit/promokit/internal/errors"
)

// SelectionStrategy is the host-side policy for choosing among candidates
// of the same discount class.
type SelectionStrategy string

const (
	// SelectionStrategyFirst honors only the first applicable candidate
	SelectionStrategyFirst SelectionStrategy = "FIRST"
	// SelectionStrategyAll honors every candidate
	SelectionStrategyAll SelectionStrategy = "ALL"
)

func (s SelectionStrategy) String() string {
	return string(s)
}

func (s SelectionStrategy) Validate() error {
	allowed := []SelectionStrategy{
		SelectionStrategyFirst,
		SelectionStrategyAll,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid selection strategy").
			WithHint("Selection strategy must be FIRST or ALL").
			WithReportableDetails(map[string]any{
				"allowed":  allowed,
				"strategy": s,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Operation is one discount instruction for the host, discriminated by
// exactly one of its class-specific members.
type Operation struct {
	OrderDiscountsAdd    *OrderDiscountsAddOperation    `json:"orderDiscountsAdd,omitempty"`
	ProductDiscountsAdd  *ProductDiscountsAddOperation  `json:"productDiscountsAdd,omitempty"`
	DeliveryDiscountsAdd *DeliveryDiscountsAddOperation `json:"deliveryDiscountsAdd,omitempty"`
}

// OrderDiscountsAddOperation discounts the order subtotal
type OrderDiscountsAddOperation struct {
	Candidates        []OrderDiscountCandidate `json:"candidates"`
	SelectionStrategy SelectionStrategy        `json:"selectionStrategy"`
}

// OrderDiscountCandidate is one concrete order-level discount offer
type OrderDiscountCandidate struct {
	Message string                `json:"message,omitempty"`
	Targets []OrderDiscountTarget `json:"targets"`
	Value   DiscountValue         `json:"value"`
}

// OrderDiscountTarget targets the order subtotal
type OrderDiscountTarget struct {
	OrderSubtotal *OrderSubtotalTarget `json:"orderSubtotal,omitempty"`
}

// OrderSubtotalTarget scopes an order discount, optionally excluding lines
type OrderSubtotalTarget struct {
	ExcludedCartLineIDs []string `json:"excludedCartLineIds"`
}

// ProductDiscountsAddOperation discounts specific cart lines
type ProductDiscountsAddOperation struct {
	Candidates        []ProductDiscountCandidate `json:"candidates"`
	SelectionStrategy SelectionStrategy          `json:"selectionStrategy"`
}

// ProductDiscountCandidate is one concrete line-level discount offer
type ProductDiscountCandidate struct {
	Message string                  `json:"message,omitempty"`
	Targets []ProductDiscountTarget `json:"targets"`
	Value   DiscountValue           `json:"value"`
}

// ProductDiscountTarget targets one cart line
type ProductDiscountTarget struct {
	CartLine *CartLineTarget `json:"cartLine,omitempty"`
}

// CartLineTarget identifies the discounted cart line
type CartLineTarget struct {
	ID string `json:"id"`
}

// DeliveryDiscountsAddOperation discounts delivery groups. All candidates
// for one evaluation share a single operation with the ALL strategy.
type DeliveryDiscountsAddOperation struct {
	Candidates        []DeliveryDiscountCandidate `json:"candidates"`
	SelectionStrategy SelectionStrategy           `json:"selectionStrategy"`
}

// DeliveryDiscountCandidate is one concrete shipping discount offer.
// Candidates for unmet rules carry a zero value and an explanatory message.
type DeliveryDiscountCandidate struct {
	Message string                   `json:"message,omitempty"`
	Targets []DeliveryDiscountTarget `json:"targets"`
	Value   DiscountValue            `json:"value"`
}

// DeliveryDiscountTarget targets one delivery group
type DeliveryDiscountTarget struct {
	DeliveryGroup *DeliveryGroupTarget `json:"deliveryGroup,omitempty"`
}

// DeliveryGroupTarget identifies the discounted delivery group
type DeliveryGroupTarget struct {
	ID string `json:"id"`
}

// DiscountValue is the realized value of a candidate. Fixed-amount rule
// values are converted to percentages before they reach the output.
type DiscountValue struct {
	Percentage *PercentageValue `json:"percentage,omitempty"`
}

// PercentageValue is a percentage in [0, 100]
type PercentageValue struct {
	Value decimal.Decimal `json:"value"`
}

// NewPercentageValue builds a DiscountValue from a realized percentage
func NewPercentageValue(value decimal.Decimal) DiscountValue {
	return DiscountValue{
		Percentage: &PercentageValue{Value: value},
	}
}

// EvaluationResult is the complete output of one engine invocation. An
// empty operation list is a valid and common result.
type EvaluationResult struct {
	Operations []Operation `json:"operations"`
}

// NewEvaluationResult returns a result with a non-nil operation list
func NewEvaluationResult(operations []Operation) *EvaluationResult {
	if operations == nil {
		operations = []Operation{}
	}
	return &EvaluationResult{Operations: operations}
}
