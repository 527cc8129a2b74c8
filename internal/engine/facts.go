package engine

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/promokit/promokit/internal/types"
)

// postalCodeAttributeKeys is the fixed priority order of cart attribute
// keys consulted when the delivery address carries no postal code.
var postalCodeAttributeKeys = []string{
	"checkoutPostalCode",
	"shippingZip",
	"postalCode",
	"zipCode",
	"deliveryPostalCode",
}

// postalCodePattern extracts an NN-NNN postal code embedded in a free-form
// address line, the last-resort source in the resolution chain.
var postalCodePattern = regexp.MustCompile(`\b\d{2}-\d{3}\b`)

// CartFacts are the derived facts conditions are evaluated against.
// Pointer fields are nil when the fact could not be resolved, which is
// distinct from an empty value.
type CartFacts struct {
	CartTotal          decimal.Decimal
	CartQuantity       int64
	CartWeight         decimal.Decimal
	CustomerCountry    *string
	CustomerPostalCode *string
}

// ResolveFacts computes the derived facts for one cart snapshot. Facts are
// recomputed per evaluation; rule sets are small and invocations one-shot,
// so nothing is cached across rules.
func ResolveFacts(cart *types.Cart) CartFacts {
	facts := CartFacts{
		CartTotal:  decimal.Zero,
		CartWeight: decimal.Zero,
	}

	for _, line := range cart.Lines {
		facts.CartTotal = facts.CartTotal.Add(line.SubtotalAmount)
		facts.CartQuantity += line.Quantity

		weight, err := decimal.NewFromString(strings.TrimSpace(line.Merchandise.Weight))
		if err != nil {
			// missing or unparseable weight counts as zero
			continue
		}
		facts.CartWeight = facts.CartWeight.Add(weight.Mul(decimal.NewFromInt(line.Quantity)))
	}

	if address := deliveryAddress(cart); address != nil {
		if country := strings.TrimSpace(address.CountryCode); country != "" {
			facts.CustomerCountry = &country
		}
	}

	facts.CustomerPostalCode = resolvePostalCode(cart)

	return facts
}

// resolvePostalCode tries, in strict priority order: the delivery address
// postal code, the well-known cart attribute keys, and finally a pattern
// extraction from the first address line. nil means the fact is undefined.
func resolvePostalCode(cart *types.Cart) *string {
	address := deliveryAddress(cart)

	if address != nil {
		if zip := strings.TrimSpace(address.Zip); zip != "" {
			return &zip
		}
	}

	for _, key := range postalCodeAttributeKeys {
		if value, ok := cart.Attributes[key]; ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return &trimmed
			}
		}
	}

	if address != nil {
		if match := postalCodePattern.FindString(address.Address1); match != "" {
			return &match
		}
	}

	return nil
}

func deliveryAddress(cart *types.Cart) *types.DeliveryAddress {
	if len(cart.DeliveryGroups) == 0 {
		return nil
	}
	return cart.DeliveryGroups[0].DeliveryAddress
}
