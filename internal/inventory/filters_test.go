package inventory

import (
	"net/url"
	"testing"

	"github.com/angelmondragon/inventory-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSinglePredicates(t *testing.T) {
	f, err := ParseFilter(url.Values{"condition": {"NEW"}})
	require.NoError(t, err)
	assert.Equal(t, filterCondition, f.kind)
	assert.Equal(t, enums.ConditionNew, f.condition)

	f, err = ParseFilter(url.Values{"restock": {"TRUE"}})
	require.NoError(t, err)
	assert.Equal(t, filterRestock, f.kind)
	assert.True(t, f.restock)

	f, err = ParseFilter(url.Values{"restock": {"false"}})
	require.NoError(t, err)
	assert.False(t, f.restock)

	f, err = ParseFilter(url.Values{"quantity": {"42"}})
	require.NoError(t, err)
	assert.Equal(t, filterQuantity, f.kind)
	assert.Equal(t, 42, f.quantity)

	f, err = ParseFilter(url.Values{"name": {"Nike shoes"}})
	require.NoError(t, err)
	assert.Equal(t, filterName, f.kind)
	assert.Equal(t, "Nike shoes", f.name)

	f, err = ParseFilter(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, filterNone, f.kind)
}

func TestParseFilterPrecedence(t *testing.T) {
	// condition outranks everything else; exactly one predicate is chosen.
	f, err := ParseFilter(url.Values{
		"condition": {"USED"},
		"restock":   {"true"},
		"quantity":  {"7"},
		"name":      {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, filterCondition, f.kind)

	f, err = ParseFilter(url.Values{
		"restock":  {"true"},
		"quantity": {"7"},
		"name":     {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, filterRestock, f.kind)

	f, err = ParseFilter(url.Values{
		"quantity": {"7"},
		"name":     {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, filterQuantity, f.kind)
}

func TestParseFilterRejectsMalformedValues(t *testing.T) {
	cases := map[string]url.Values{
		"unknown condition":   {"condition": {"damaged"}},
		"lowercase condition": {"condition": {"new"}},
		"bad restock token":   {"restock": {"yes"}},
		"negative quantity":   {"quantity": {"-3"}},
		"decimal quantity":    {"quantity": {"3.5"}},
		"alpha quantity":      {"quantity": {"ten"}},
		"empty quantity":      {"quantity": {""}},
	}

	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFilter(query)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestParseFilterTreatsEmptyValuesAsAbsent(t *testing.T) {
	// condition/restock/name fall through when empty; quantity does not.
	f, err := ParseFilter(url.Values{"condition": {""}, "name": {"boots"}})
	require.NoError(t, err)
	assert.Equal(t, filterName, f.kind)
}
