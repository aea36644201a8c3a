package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bumpwise/apimodels"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "deli meat", Canonicalize("  Deli   MEAT  "))
	assert.Equal(t, "", Canonicalize("   "))
	assert.Equal(t, "green tea", Canonicalize("Green\tTea"))
}

func TestLookupExactKey(t *testing.T) {
	s := New()

	rec := s.Lookup("alcohol")
	require.NotNil(t, rec)
	assert.Equal(t, apimodels.SafetyLevelAvoid, rec.SafetyLevel)
	assert.NotEmpty(t, rec.DirectRisks)
}

func TestLookupPluralForms(t *testing.T) {
	s := New()

	tests := []struct {
		query string
		item  string
	}{
		{"peanut", "Peanuts / Tree Nuts"},
		{"peanuts", "Peanuts / Tree Nuts"},
		{"apples", "Apple"},
		{"egg", "Eggs"},
	}
	for _, tt := range tests {
		rec := s.Lookup(tt.query)
		require.NotNil(t, rec, "query %q should match", tt.query)
		assert.Equal(t, tt.item, rec.Item, "query %q", tt.query)
	}
}

// The word-bounded rule replaced substring containment, which produced
// false positives like "apple" matching inside "pineapple".
func TestLookupNoSubstringFalsePositives(t *testing.T) {
	s := New()

	rec := s.Lookup("apple")
	require.NotNil(t, rec)
	assert.Equal(t, "Apple", rec.Item)

	rec = s.Lookup("pineapple")
	require.NotNil(t, rec)
	assert.Equal(t, "Pineapple", rec.Item)

	rec = s.Lookup("pineapple smoothie")
	require.NotNil(t, rec)
	assert.Equal(t, "Pineapple", rec.Item)
}

func TestLookupWordBoundedInLongerQuery(t *testing.T) {
	s := New()

	rec := s.Lookup("is deli meat safe")
	require.NotNil(t, rec)
	assert.Equal(t, "Deli Meat / Cold Cuts", rec.Item)
}

func TestLookupDisplayName(t *testing.T) {
	s := New()

	// First segment of "Sushi / Raw Fish".
	rec := s.Lookup("Sushi")
	require.NotNil(t, rec)
	assert.Equal(t, "Sushi / Raw Fish", rec.Item)
}

func TestLookupAliases(t *testing.T) {
	s := New()

	tests := []struct {
		query string
		item  string
	}{
		{"advil", "Ibuprofen / Advil / NSAIDs"},
		{"a glass of wine", "Alcohol"},
		{"hot tub", "Hot Springs / Hot Tubs"},
		{"peanut butter", "Peanuts / Tree Nuts"},
		{"lattes", "Caffeine / Coffee"}, // plural alias word
	}
	for _, tt := range tests {
		rec := s.Lookup(tt.query)
		require.NotNil(t, rec, "query %q should match", tt.query)
		assert.Equal(t, tt.item, rec.Item, "query %q", tt.query)
	}
}

// The lifestyle, skincare, medication, and household entries resolve
// through the same precedence chain as the food entries.
func TestLookupLifestyleAndMedicationEntries(t *testing.T) {
	s := New()

	tests := []struct {
		query string
		item  string
	}{
		{"melatonin", "Melatonin"},
		{"x-ray", "X-Ray / Radiation"},
		{"pool", "Swimming"},
		{"weed", "CBD / Cannabis"},
		{"claritin", "Benadryl / Diphenhydramine"},
		{"back sleeping", "Sleep Position"},
		{"vitamin c", "Vitamin C Serum"},
		{"folic acid", "Prenatal Vitamins"},
		{"can i use bleach while pregnant", "Cleaning Products"},
	}
	for _, tt := range tests {
		rec := s.Lookup(tt.query)
		require.NotNil(t, rec, "query %q should match", tt.query)
		assert.Equal(t, tt.item, rec.Item, "query %q", tt.query)
	}
}

// Guards against records being dropped when the tables are edited.
func TestRecordCount(t *testing.T) {
	s := New()

	assert.Equal(t, 61, s.Len())
}

func TestLookupMiss(t *testing.T) {
	s := New()

	assert.Nil(t, s.Lookup("quinoa salad with xyz123"))
	assert.Nil(t, s.Lookup(""))
	assert.Equal(t, "", s.Normalize("completely unknown thing"))
}

func TestLookupReturnsNonNilLists(t *testing.T) {
	s := New()

	rec := s.Lookup("apple")
	require.NotNil(t, rec)
	assert.NotNil(t, rec.DirectRisks)
	assert.NotNil(t, rec.GeneralRisks)
	assert.NotNil(t, rec.Recommendations)
	assert.NotNil(t, rec.Sources)
}

func TestAliasTargetsExist(t *testing.T) {
	for alias, key := range aliases {
		_, ok := records[key]
		assert.True(t, ok, "alias %q points to missing record %q", alias, key)
	}
}
