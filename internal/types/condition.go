package types

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"

	ierr "github.com/promokit/promokit/internal/errors"
)

// ConditionType represents the cart fact a condition tests
type ConditionType string

const (
	ConditionTypeCartTotal        ConditionType = "cart_total"
	ConditionTypeCartQuantity     ConditionType = "cart_quantity"
	ConditionTypeCartWeight       ConditionType = "cart_weight"
	ConditionTypeCountry          ConditionType = "country"
	ConditionTypePostalCode       ConditionType = "postal_code"
	ConditionTypeCustomerTags     ConditionType = "customer_tags"
	ConditionTypeCustomerLoggedIn ConditionType = "customer_logged_in"
	ConditionTypeOrderCount       ConditionType = "order_count"
	ConditionTypeCartContains     ConditionType = "cart_contains"
)

func (t ConditionType) String() string {
	return string(t)
}

func (t ConditionType) Validate() error {
	if !lo.Contains(AllConditionTypes(), t) {
		return ierr.NewError("invalid condition type").
			WithHint("Please provide a valid condition type").
			WithReportableDetails(map[string]any{
				"allowed": AllConditionTypes(),
				"type":    t,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// IsGeographic reports whether the condition tests the delivery destination.
// The order-level pipeline strips these before evaluation.
func (t ConditionType) IsGeographic() bool {
	return t == ConditionTypeCountry || t == ConditionTypePostalCode
}

func AllConditionTypes() []ConditionType {
	return []ConditionType{
		ConditionTypeCartTotal,
		ConditionTypeCartQuantity,
		ConditionTypeCartWeight,
		ConditionTypeCountry,
		ConditionTypePostalCode,
		ConditionTypeCustomerTags,
		ConditionTypeCustomerLoggedIn,
		ConditionTypeOrderCount,
		ConditionTypeCartContains,
	}
}

// ConditionOperator represents the comparison a condition applies to its fact
type ConditionOperator string

const (
	// Numeric operators
	ConditionOperatorGreaterThan        ConditionOperator = ">"
	ConditionOperatorGreaterThanOrEqual ConditionOperator = ">="
	ConditionOperatorLessThan           ConditionOperator = "<"
	ConditionOperatorLessThanOrEqual    ConditionOperator = "<="
	ConditionOperatorEqual              ConditionOperator = "=="
	ConditionOperatorNotEqual           ConditionOperator = "!="

	// String and set operators
	ConditionOperatorEquals      ConditionOperator = "equals"
	ConditionOperatorNotEquals   ConditionOperator = "not_equals"
	ConditionOperatorContains    ConditionOperator = "contains"
	ConditionOperatorNotContains ConditionOperator = "not_contains"

	// Login-state operators
	ConditionOperatorIsLoggedIn    ConditionOperator = "is_logged_in"
	ConditionOperatorIsNotLoggedIn ConditionOperator = "is_not_logged_in"

	// Product-identity operators for cart_contains
	ConditionOperatorOnlyTheseProducts   ConditionOperator = "only_these_products"
	ConditionOperatorAtLeastOneOfThese   ConditionOperator = "at_least_one_of_these"
	ConditionOperatorAllOfTheseProducts  ConditionOperator = "all_of_these_products"
	ConditionOperatorNoneOfTheseProducts ConditionOperator = "none_of_these_products"

	// Collection-membership operators for cart_contains
	ConditionOperatorOnlyTheseCollections      ConditionOperator = "only_these_collections"
	ConditionOperatorAtLeastOneCollection      ConditionOperator = "at_least_one_collection"
	ConditionOperatorNoProductsFromCollections ConditionOperator = "no_products_from_collections"
)

func (o ConditionOperator) String() string {
	return string(o)
}

// NumericOperators are valid for cart_total, cart_quantity, cart_weight
// and order_count conditions.
func NumericOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorGreaterThan,
		ConditionOperatorGreaterThanOrEqual,
		ConditionOperatorLessThan,
		ConditionOperatorLessThanOrEqual,
		ConditionOperatorEqual,
		ConditionOperatorNotEqual,
	}
}

// StringOperators are valid for country and postal_code conditions
func StringOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorEquals,
		ConditionOperatorNotEquals,
		ConditionOperatorContains,
		ConditionOperatorNotContains,
	}
}

// SetOperators are valid for customer_tags conditions
func SetOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorEquals,
		ConditionOperatorNotEquals,
	}
}

// LoginOperators are valid for customer_logged_in conditions
func LoginOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorIsLoggedIn,
		ConditionOperatorIsNotLoggedIn,
	}
}

// ProductOperators are the product-identity family for cart_contains
func ProductOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorOnlyTheseProducts,
		ConditionOperatorAtLeastOneOfThese,
		ConditionOperatorAllOfTheseProducts,
		ConditionOperatorNoneOfTheseProducts,
	}
}

// CollectionOperators are the collection-membership family for cart_contains
func CollectionOperators() []ConditionOperator {
	return []ConditionOperator{
		ConditionOperatorOnlyTheseCollections,
		ConditionOperatorAtLeastOneCollection,
		ConditionOperatorNoProductsFromCollections,
	}
}

// OperatorsForType returns the operators a condition type accepts
func OperatorsForType(t ConditionType) []ConditionOperator {
	switch t {
	case ConditionTypeCartTotal, ConditionTypeCartQuantity, ConditionTypeCartWeight, ConditionTypeOrderCount:
		return NumericOperators()
	case ConditionTypeCountry, ConditionTypePostalCode:
		return StringOperators()
	case ConditionTypeCustomerTags:
		return SetOperators()
	case ConditionTypeCustomerLoggedIn:
		return LoginOperators()
	case ConditionTypeCartContains:
		return append(ProductOperators(), CollectionOperators()...)
	default:
		return nil
	}
}

// Condition is one atomic eligibility test within a discount rule.
// Value is always a string on the wire; list-valued conditions use a
// comma-separated representation.
type Condition struct {
	Type     ConditionType     `json:"type"`
	Operator ConditionOperator `json:"operator"`
	Value    string            `json:"value"`
}

// UnmarshalJSON accepts the condition value as either a JSON string or a
// bare number, since merchant tooling has produced both.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     ConditionType     `json:"type"`
		Operator ConditionOperator `json:"operator"`
		Value    json.RawMessage   `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Type = raw.Type
	c.Operator = raw.Operator
	c.Value = ""

	if len(raw.Value) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		c.Value = s
		return nil
	}
	c.Value = strings.Trim(string(raw.Value), `"`)
	return nil
}

// Values splits the condition value as a comma-separated list, trimming
// whitespace and dropping empty entries.
func (c Condition) Values() []string {
	parts := strings.Split(c.Value, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// Validate checks the condition's type and that its operator belongs to
// the operator family for that type.
func (c Condition) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return err
	}

	if !lo.Contains(OperatorsForType(c.Type), c.Operator) {
		return ierr.NewError("invalid operator for condition type").
			WithHintf("Operator %s is not valid for %s conditions", c.Operator, c.Type).
			WithReportableDetails(map[string]any{
				"allowed":  OperatorsForType(c.Type),
				"operator": c.Operator,
				"type":     c.Type,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
