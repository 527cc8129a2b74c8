package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/promokit/promokit/internal/testutil"
	"github.com/promokit/promokit/internal/types"
)

func TestCompareNumeric(t *testing.T) {
	fact := decimal.NewFromInt(50)

	tests := []struct {
		name string
		op   types.ConditionOperator
		raw  string
		want bool
	}{
		{name: "greater than passes", op: types.ConditionOperatorGreaterThan, raw: "49", want: true},
		{name: "greater than fails on equal", op: types.ConditionOperatorGreaterThan, raw: "50", want: false},
		{name: "greater or equal on equal", op: types.ConditionOperatorGreaterThanOrEqual, raw: "50", want: true},
		{name: "less than", op: types.ConditionOperatorLessThan, raw: "50.01", want: true},
		{name: "less or equal", op: types.ConditionOperatorLessThanOrEqual, raw: "49.99", want: false},
		{name: "equal", op: types.ConditionOperatorEqual, raw: "50.00", want: true},
		{name: "not equal", op: types.ConditionOperatorNotEqual, raw: "50", want: false},
		{name: "whitespace around value", op: types.ConditionOperatorEqual, raw: " 50 ", want: true},
		{name: "unparseable value fails closed", op: types.ConditionOperatorGreaterThan, raw: "abc", want: false},
		{name: "empty value fails closed", op: types.ConditionOperatorEqual, raw: "", want: false},
		{name: "string operator on numeric fact fails", op: types.ConditionOperatorContains, raw: "50", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareNumeric(fact, tt.op, tt.raw))
		})
	}
}

func TestCompareString(t *testing.T) {
	tests := []struct {
		name  string
		fact  string
		op    types.ConditionOperator
		value string
		want  bool
	}{
		{name: "equals is case-insensitive", fact: "PL", op: types.ConditionOperatorEquals, value: "pl", want: true},
		{name: "equals trims whitespace", fact: " PL ", op: types.ConditionOperatorEquals, value: "pl", want: true},
		{name: "not equals", fact: "PL", op: types.ConditionOperatorNotEquals, value: "DE", want: true},
		{name: "contains", fact: "00-950", op: types.ConditionOperatorContains, value: "00-", want: true},
		{name: "not contains", fact: "00-950", op: types.ConditionOperatorNotContains, value: "99", want: true},
		{name: "contains misses", fact: "00-950", op: types.ConditionOperatorContains, value: "11", want: false},
		{name: "numeric operator on string fact fails", fact: "PL", op: types.ConditionOperatorGreaterThan, value: "A", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareString(tt.fact, tt.op, tt.value))
		})
	}
}

func TestCompareLogin(t *testing.T) {
	assert.True(t, compareLogin(true, types.ConditionOperatorIsLoggedIn))
	assert.False(t, compareLogin(false, types.ConditionOperatorIsLoggedIn))
	assert.True(t, compareLogin(false, types.ConditionOperatorIsNotLoggedIn))
	assert.False(t, compareLogin(true, types.ConditionOperatorIsNotLoggedIn))
	assert.False(t, compareLogin(true, types.ConditionOperatorEquals))
}

func TestCompareProducts(t *testing.T) {
	cart := testutil.NewCartBuilder().
		WithProductLine("1", 1, "10", "prod-a", false).
		WithProductLine("2", 1, "10", "prod-b", false).
		Build()

	tests := []struct {
		name   string
		op     types.ConditionOperator
		wanted []string
		want   bool
	}{
		{name: "only these passes when every line matches", op: types.ConditionOperatorOnlyTheseProducts, wanted: []string{"prod-a", "prod-b", "prod-c"}, want: true},
		{name: "only these fails on a stray line", op: types.ConditionOperatorOnlyTheseProducts, wanted: []string{"prod-a"}, want: false},
		{name: "at least one of these", op: types.ConditionOperatorAtLeastOneOfThese, wanted: []string{"prod-b", "prod-z"}, want: true},
		{name: "at least one misses", op: types.ConditionOperatorAtLeastOneOfThese, wanted: []string{"prod-z"}, want: false},
		{name: "all of these present", op: types.ConditionOperatorAllOfTheseProducts, wanted: []string{"prod-a", "prod-b"}, want: true},
		{name: "all of these with one absent", op: types.ConditionOperatorAllOfTheseProducts, wanted: []string{"prod-a", "prod-z"}, want: false},
		{name: "all of these with empty list fails", op: types.ConditionOperatorAllOfTheseProducts, wanted: []string{}, want: false},
		{name: "none of these", op: types.ConditionOperatorNoneOfTheseProducts, wanted: []string{"prod-z"}, want: true},
		{name: "none of these with a match", op: types.ConditionOperatorNoneOfTheseProducts, wanted: []string{"prod-a"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareProducts(cart.Lines, tt.op, tt.wanted))
		})
	}
}

func TestCompareCollections(t *testing.T) {
	mixed := testutil.NewCartBuilder().
		WithProductLine("1", 1, "10", "prod-a", true).
		WithProductLine("2", 1, "10", "prod-b", false).
		Build()
	allIn := testutil.NewCartBuilder().
		WithProductLine("1", 1, "10", "prod-a", true).
		Build()
	noneIn := testutil.NewCartBuilder().
		WithProductLine("1", 1, "10", "prod-a", false).
		Build()

	assert.False(t, compareCollections(mixed.Lines, types.ConditionOperatorOnlyTheseCollections))
	assert.True(t, compareCollections(allIn.Lines, types.ConditionOperatorOnlyTheseCollections))
	assert.False(t, compareCollections(nil, types.ConditionOperatorOnlyTheseCollections))

	assert.True(t, compareCollections(mixed.Lines, types.ConditionOperatorAtLeastOneCollection))
	assert.False(t, compareCollections(noneIn.Lines, types.ConditionOperatorAtLeastOneCollection))

	assert.True(t, compareCollections(noneIn.Lines, types.ConditionOperatorNoProductsFromCollections))
	assert.False(t, compareCollections(mixed.Lines, types.ConditionOperatorNoProductsFromCollections))
}
