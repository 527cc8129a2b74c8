package types

import (
	"github.com/samber/lo"
)

// ContextKey is the type for values stored in a request context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
)

const (
	HeaderRequestID = "X-Request-ID"
)

// EvaluationContext carries the per-invocation inputs that are not part of
// the cart snapshot: the requested discount classes, the code supplied at
// checkout (if any), and the shop's local date.
type EvaluationContext struct {
	DiscountClasses []DiscountClass
	DiscountCode    string
	LocalDate       *Date
}

// HasClass reports whether the invocation requested the given class
func (c EvaluationContext) HasClass(class DiscountClass) bool {
	return lo.Contains(c.DiscountClasses, class)
}

// HasAnyClass reports whether the invocation requested any of the given classes
func (c EvaluationContext) HasAnyClass(classes ...DiscountClass) bool {
	return lo.SomeBy(classes, c.HasClass)
}
