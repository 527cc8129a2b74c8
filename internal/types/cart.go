package types

import (
	"github.com/shopspring/decimal"
)

// Cart is the checkout snapshot one evaluation runs against. The engine
// never mutates it.
type Cart struct {
	Lines          []CartLine        `json:"lines"`
	DeliveryGroups []DeliveryGroup   `json:"deliveryGroups"`
	BuyerIdentity  *BuyerIdentity    `json:"buyerIdentity,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
}

// IsEmpty reports whether the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CartLine is one line item in the cart
type CartLine struct {
	ID             string          `json:"id"`
	Quantity       int64           `json:"quantity"`
	SubtotalAmount decimal.Decimal `json:"subtotalAmount"`
	Merchandise    Merchandise     `json:"merchandise"`
}

// Merchandise is the purchasable variant referenced by a cart line
type Merchandise struct {
	// Weight is the per-unit weight as provided by the host; empty or
	// unparseable weights count as zero.
	Weight  string  `json:"weight,omitempty"`
	Product Product `json:"product"`
}

// Product carries product identity plus the host-precomputed
// collection-membership flag.
type Product struct {
	ID string `json:"id"`
	// InAnyCollection is precomputed by the cart data provider against the
	// collections configured for the rule set as a whole. The engine cannot
	// distinguish which collection matched.
	InAnyCollection bool `json:"inAnyCollection"`
}

// DeliveryGroup is one shipping destination of the cart
type DeliveryGroup struct {
	ID              string           `json:"id"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`
}

// DeliveryAddress is the destination address of a delivery group
type DeliveryAddress struct {
	Zip         string `json:"zip,omitempty"`
	Address1    string `json:"address1,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// BuyerIdentity describes who is checking out
type BuyerIdentity struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Customer        *Customer `json:"customer,omitempty"`
}

// Customer is the authenticated customer, when known
type Customer struct {
	// HasAnyTag is precomputed by the host against the tags configured in
	// the rule set, like Product.InAnyCollection.
	HasAnyTag      bool  `json:"hasAnyTag"`
	NumberOfOrders int64 `json:"numberOfOrders"`
}
