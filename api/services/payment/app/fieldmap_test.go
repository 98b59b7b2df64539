package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldMap_EmptyYieldsDefault(t *testing.T) {
	fm, err := ParseFieldMap("")
	require.NoError(t, err)
	assert.Equal(t, FieldMap{"id": {Field: "id"}}, fm)
}

func TestParseFieldMap_StringAndNestedEntries(t *testing.T) {
	fm, err := ParseFieldMap(`{"total": "amount", "cardBrand": {"source": "brand"}}`)
	require.NoError(t, err)
	assert.Equal(t, FieldPath{Field: "amount"}, fm["total"])
	assert.Equal(t, FieldPath{Object: "source", Field: "brand"}, fm["cardBrand"])
}

func TestParseFieldMap_Rejects(t *testing.T) {
	_, err := ParseFieldMap(`{"total": 12}`)
	assert.Error(t, err)

	_, err = ParseFieldMap(`{"cardBrand": {"source": "brand", "card": "brand"}}`)
	assert.Error(t, err)

	_, err = ParseFieldMap(`{"cardBrand": {"source": 7}}`)
	assert.Error(t, err)

	_, err = ParseFieldMap(`{bad json`)
	assert.Error(t, err)
}

func TestProject_ExactKeys(t *testing.T) {
	fm, err := ParseFieldMap(`{"total": "amount", "cardBrand": {"source": "brand"}}`)
	require.NoError(t, err)

	doc := map[string]interface{}{
		"id":       "ch_123",
		"amount":   float64(1999),
		"currency": "usd",
		"source": map[string]interface{}{
			"brand": "Visa",
			"last4": "4242",
		},
	}

	out := fm.Project(doc)
	assert.Equal(t, map[string]interface{}{
		"total":     float64(1999),
		"cardBrand": "Visa",
	}, out)
}

func TestProject_SkipsMissingFieldsSilently(t *testing.T) {
	fm := FieldMap{
		"total":     {Field: "amount"},
		"cardBrand": {Object: "source", Field: "brand"},
	}

	out := fm.Project(map[string]interface{}{"currency": "usd"})
	assert.Empty(t, out)

	// Sub-object present but not a mapping
	out = fm.Project(map[string]interface{}{"source": "tok_visa"})
	assert.Empty(t, out)
}
