package testutil

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

// CartBuilder assembles cart snapshots for tests
type CartBuilder struct {
	cart types.Cart
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		cart: types.Cart{
			Lines:          []types.CartLine{},
			DeliveryGroups: []types.DeliveryGroup{},
		},
	}
}

// WithLine adds a line item with the given quantity and subtotal
func (b *CartBuilder) WithLine(id string, quantity int64, subtotal string) *CartBuilder {
	b.cart.Lines = append(b.cart.Lines, types.CartLine{
		ID:             id,
		Quantity:       quantity,
		SubtotalAmount: decimal.RequireFromString(subtotal),
		Merchandise: types.Merchandise{
			Product: types.Product{ID: "product-" + id},
		},
	})
	return b
}

// WithProductLine adds a line item with explicit product identity and
// collection membership.
func (b *CartBuilder) WithProductLine(id string, quantity int64, subtotal string, productID string, inAnyCollection bool) *CartBuilder {
	b.cart.Lines = append(b.cart.Lines, types.CartLine{
		ID:             id,
		Quantity:       quantity,
		SubtotalAmount: decimal.RequireFromString(subtotal),
		Merchandise: types.Merchandise{
			Product: types.Product{
				ID:              productID,
				InAnyCollection: inAnyCollection,
			},
		},
	})
	return b
}

// WithWeight sets the per-unit weight on the most recently added line
func (b *CartBuilder) WithWeight(weight string) *CartBuilder {
	b.cart.Lines[len(b.cart.Lines)-1].Merchandise.Weight = weight
	return b
}

// WithDeliveryGroup adds a delivery group with the given address
func (b *CartBuilder) WithDeliveryGroup(id, countryCode, zip, address1 string) *CartBuilder {
	b.cart.DeliveryGroups = append(b.cart.DeliveryGroups, types.DeliveryGroup{
		ID: id,
		DeliveryAddress: &types.DeliveryAddress{
			CountryCode: countryCode,
			Zip:         zip,
			Address1:    address1,
		},
	})
	return b
}

// WithAttribute sets a free-form cart attribute
func (b *CartBuilder) WithAttribute(key, value string) *CartBuilder {
	if b.cart.Attributes == nil {
		b.cart.Attributes = map[string]string{}
	}
	b.cart.Attributes[key] = value
	return b
}

// WithCustomer attaches an authenticated customer
func (b *CartBuilder) WithCustomer(hasAnyTag bool, numberOfOrders int64) *CartBuilder {
	b.cart.BuyerIdentity = &types.BuyerIdentity{
		IsAuthenticated: true,
		Customer: &types.Customer{
			HasAnyTag:      hasAnyTag,
			NumberOfOrders: numberOfOrders,
		},
	}
	return b
}

// WithAnonymousBuyer attaches an unauthenticated buyer identity
func (b *CartBuilder) WithAnonymousBuyer() *CartBuilder {
	b.cart.BuyerIdentity = &types.BuyerIdentity{IsAuthenticated: false}
	return b
}

func (b *CartBuilder) Build() types.Cart {
	return b.cart
}

// RuleSetJSON marshals rules into a rule-set record string
func RuleSetJSON(rules ...types.DiscountRule) string {
	data, err := json.Marshal(rules)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// Percentage returns a pointer to a decimal percentage value
func Percentage(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
