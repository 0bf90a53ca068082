// Package shopping prices recipe lines against store profiles and picks the
// store combination that covers a list at the best effective cost.
package shopping

import (
	"fmt"
	"math"

	"github.com/grocerly/v1/internal/domain/catalog"
)

// PricingEngine derives per-store unit prices from the ingredient catalog.
// It is stateless beyond the catalog reference and safe for concurrent use.
type PricingEngine struct {
	catalog *catalog.Catalog
}

// NewPricingEngine wires a pricing engine to a validated catalog.
func NewPricingEngine(c *catalog.Catalog) *PricingEngine {
	return &PricingEngine{catalog: c}
}

// UnitPrice computes what one purchase unit of the ingredient costs at the
// store. The category override, when the store has one, replaces the general
// multiplier; the seasonal adjustment applies only to seasonal ingredients.
// The result is intentionally unrounded, rounding happens per line.
func (p *PricingEngine) UnitPrice(store catalog.Store, ingredientName string) (float64, error) {
	ing, ok := p.catalog.Ingredient(ingredientName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", catalog.ErrUnknownIngredient, ingredientName)
	}

	mult := store.Multiplier
	if override, ok := store.CategoryOverrides[ing.Category]; ok {
		mult = override
	}

	price := ing.BasePrice * mult
	if ing.Seasonal {
		price *= store.SeasonalAdjustment
	}
	return price, nil
}

// LineTotal prices a full recipe line at the store, rounded to cents the way
// a register would.
func (p *PricingEngine) LineTotal(store catalog.Store, line catalog.RecipeLine) (float64, error) {
	unit, err := p.UnitPrice(store, line.Ingredient)
	if err != nil {
		return 0, err
	}
	return round2(unit * line.Quantity), nil
}

// round2 rounds to the nearest cent, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
