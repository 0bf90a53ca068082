package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesTables(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	require.NotNil(t, c)

	// Every recipe line must resolve to a cataloged ingredient so that any
	// store can price any list.
	for _, rec := range recipeTable {
		for _, line := range rec.Lines {
			_, ok := c.Ingredient(line.Ingredient)
			assert.True(t, ok, "recipe %q references %q", rec.Name, line.Ingredient)
			assert.Greater(t, line.Quantity, 0.0)
		}
	}
}

func TestIngredientLookupIsCaseInsensitive(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	ing, ok := c.Ingredient("  Chicken Breast ")
	require.True(t, ok)
	assert.Equal(t, "chicken breast", ing.Name)
	assert.Equal(t, CategoryMeat, ing.Category)
	assert.InDelta(t, 4.99, ing.BasePrice, 1e-9)

	_, ok = c.Ingredient("unobtainium")
	assert.False(t, ok)
}

func TestResolveRecipe(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	rec, err := c.Resolve("  GUACAMOLE ")
	require.NoError(t, err)
	assert.Equal(t, "guacamole", rec.Name)
	require.Len(t, rec.Lines, 4)
	assert.Equal(t, "avocado", rec.Lines[0].Ingredient)
	assert.Equal(t, 3.0, rec.Lines[0].Quantity)

	_, err = c.Resolve("moon cheese souffle")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestParseTier(t *testing.T) {
	cases := map[string]PriceTier{
		"":          TierUnconstrained,
		"budget":    TierBudget,
		"Budget":    TierBudget,
		"mid-range": TierMidRange,
		"midrange":  TierMidRange,
		"mid":       TierMidRange,
		"PREMIUM":   TierPremium,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseTier("luxury")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestEligibleStores(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	names := func(stores []Store) []string {
		out := make([]string, len(stores))
		for i, s := range stores {
			out[i] = s.Name
		}
		return out
	}

	assert.Equal(t,
		[]string{"Aldi", "Kroger", "Target", "Trader Joe's", "Walmart", "Whole Foods"},
		names(c.EligibleStores(TierUnconstrained)))

	// Budget shoppers never see the premium chain.
	assert.Equal(t,
		[]string{"Aldi", "Kroger", "Target", "Trader Joe's", "Walmart"},
		names(c.EligibleStores(TierBudget)))

	// Premium shoppers skip the deep discounters.
	assert.Equal(t,
		[]string{"Kroger", "Target", "Trader Joe's", "Whole Foods"},
		names(c.EligibleStores(TierPremium)))

	assert.Len(t, c.EligibleStores(TierMidRange), 6)
}

func TestRecipesByCuisine(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	byCuisine := c.RecipesByCuisine()
	assert.Contains(t, byCuisine, "Italian")
	assert.Contains(t, byCuisine, "Mexican")
	assert.Contains(t, byCuisine["Mexican"], "guacamole")
	assert.Contains(t, byCuisine["Seafood"], "shrimp scampi")

	// Groups are sorted for stable responses.
	it := byCuisine["Italian"]
	for i := 1; i < len(it); i++ {
		assert.LessOrEqual(t, it[i-1], it[i])
	}
}

func TestGenericLinesAreCataloged(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	lines := c.GenericLines()
	require.Len(t, lines, 5)
	for _, line := range lines {
		_, ok := c.Ingredient(line.Ingredient)
		assert.True(t, ok, "generic line %q", line.Ingredient)
	}
}

func TestStoreDescriptions(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	desc := c.StoreDescriptions()
	require.Len(t, desc, 6)
	assert.Contains(t, desc["Aldi"], "Budget-friendly")
}
