package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/v1/internal/domain/catalog"
)

func storeByName(t *testing.T, c *catalog.Catalog, name string) catalog.Store {
	t.Helper()
	for _, st := range c.Stores() {
		if st.Name == name {
			return st
		}
	}
	t.Fatalf("store %q not in catalog", name)
	return catalog.Store{}
}

func TestUnitPriceAppliesMultiplierAndSeasonal(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	engine := NewPricingEngine(c)

	// Seasonal produce: base price, general multiplier, seasonal adjustment.
	aldi := storeByName(t, c, "Aldi")
	unit, err := engine.UnitPrice(aldi, "avocado")
	require.NoError(t, err)
	assert.InDelta(t, 1.99*0.75*1.10, unit, 1e-9)

	// Non-seasonal pantry item without an override keeps the general rate.
	kroger := storeByName(t, c, "Kroger")
	unit, err = engine.UnitPrice(kroger, "salt")
	require.NoError(t, err)
	assert.InDelta(t, 1.99, unit, 1e-9)

	// Category override replaces the general multiplier.
	walmart := storeByName(t, c, "Walmart")
	unit, err = engine.UnitPrice(walmart, "salt")
	require.NoError(t, err)
	assert.InDelta(t, 1.99*0.85, unit, 1e-9)

	wholeFoods := storeByName(t, c, "Whole Foods")
	unit, err = engine.UnitPrice(wholeFoods, "shrimp")
	require.NoError(t, err)
	assert.InDelta(t, 12.99*1.45, unit, 1e-9)
}

func TestLineTotalRoundsToCents(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	engine := NewPricingEngine(c)

	aldi := storeByName(t, c, "Aldi")
	total, err := engine.LineTotal(aldi, catalog.RecipeLine{Ingredient: "avocado", Quantity: 3})
	require.NoError(t, err)

	// 3 x 1.64175 = 4.92525, rounded at the line.
	assert.InDelta(t, 4.93, total, 1e-9)
}

func TestUnitPriceUnknownIngredient(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	engine := NewPricingEngine(c)

	aldi := storeByName(t, c, "Aldi")
	_, err = engine.UnitPrice(aldi, "unobtainium")
	assert.ErrorIs(t, err, catalog.ErrUnknownIngredient)
}
