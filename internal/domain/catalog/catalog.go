package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog bundles the three static tables and answers lookups against them.
// Build one with New at startup and pass it by reference; it is safe for
// concurrent readers.
type Catalog struct {
	ingredients map[string]Ingredient
	stores      []Store // canonical order, used for deterministic tie-breaking
	recipes     map[string]Recipe
}

// New builds the catalog from the compiled-in tables and validates them:
// every store profile must be able to price every ingredient and every
// recipe line must reference a cataloged ingredient.
func New() (*Catalog, error) {
	c := &Catalog{
		ingredients: make(map[string]Ingredient, len(ingredientTable)),
		stores:      storeTable,
		recipes:     make(map[string]Recipe, len(recipeTable)),
	}

	for _, ing := range ingredientTable {
		key := normalize(ing.Name)
		if _, dup := c.ingredients[key]; dup {
			return nil, fmt.Errorf("duplicate ingredient %q", ing.Name)
		}
		if ing.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: ingredient %q has non-positive base price", ErrPricingDataMissing, ing.Name)
		}
		c.ingredients[key] = ing
	}

	for _, st := range c.stores {
		if st.Multiplier <= 0 || st.SeasonalAdjustment <= 0 {
			return nil, fmt.Errorf("%w: store %q has non-positive multiplier", ErrPricingDataMissing, st.Name)
		}
		for cat, m := range st.CategoryOverrides {
			if m <= 0 {
				return nil, fmt.Errorf("%w: store %q override for %s", ErrPricingDataMissing, st.Name, cat)
			}
		}
	}

	for _, rec := range recipeTable {
		key := normalize(rec.Name)
		if _, dup := c.recipes[key]; dup {
			return nil, fmt.Errorf("duplicate recipe %q", rec.Name)
		}
		for _, line := range rec.Lines {
			if _, ok := c.ingredients[normalize(line.Ingredient)]; !ok {
				return nil, fmt.Errorf("recipe %q: %w: %q", rec.Name, ErrUnknownIngredient, line.Ingredient)
			}
			if line.Quantity <= 0 {
				return nil, fmt.Errorf("recipe %q: non-positive quantity for %q", rec.Name, line.Ingredient)
			}
		}
		c.recipes[key] = rec
	}

	return c, nil
}

// Ingredient looks up a single ingredient by name (case-insensitive).
func (c *Catalog) Ingredient(name string) (Ingredient, bool) {
	ing, ok := c.ingredients[normalize(name)]
	return ing, ok
}

// Stores returns all stores in canonical order.
func (c *Catalog) Stores() []Store {
	return c.stores
}

// EligibleStores returns the candidate store set for a price tier, preserving
// canonical order. An unconstrained tier returns every store.
func (c *Catalog) EligibleStores(tier PriceTier) []Store {
	out := make([]Store, 0, len(c.stores))
	for _, st := range c.stores {
		if st.eligibleFor(tier) {
			out = append(out, st)
		}
	}
	return out
}

// Resolve finds the recipe for a food item by exact, case-insensitive,
// trimmed match. Unknown items return ErrRecipeNotFound; fallback generation
// is the caller's concern.
func (c *Catalog) Resolve(foodItem string) (Recipe, error) {
	rec, ok := c.recipes[normalize(foodItem)]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, strings.TrimSpace(foodItem))
	}
	return rec, nil
}

// RecipesByCuisine groups recipe names by cuisine for the listing endpoint.
// Names are sorted within each group for stable output.
func (c *Catalog) RecipesByCuisine() map[string][]string {
	out := make(map[string][]string)
	for _, rec := range c.recipes {
		out[rec.Cuisine] = append(out[rec.Cuisine], rec.Name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// StoreDescriptions returns the store directory for the listing endpoint.
func (c *Catalog) StoreDescriptions() map[string]string {
	out := make(map[string]string, len(c.stores))
	for _, st := range c.stores {
		out[st.Name] = st.Description
	}
	return out
}

// GenericLines is the minimal fallback shopping list used when a food item
// is unknown and ingredient generation produced nothing usable.
func (c *Catalog) GenericLines() []RecipeLine {
	return []RecipeLine{
		{Ingredient: "main protein", Quantity: 1, Unit: "lb"},
		{Ingredient: "vegetables", Quantity: 2, Unit: "varieties"},
		{Ingredient: "starch", Quantity: 2, Unit: "cups"},
		{Ingredient: "seasonings", Quantity: 1, Unit: "jar"},
		{Ingredient: "cooking oil", Quantity: 1, Unit: "16oz"},
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
