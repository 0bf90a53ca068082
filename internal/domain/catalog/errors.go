package catalog

import "errors"

// Domain errors for catalog lookups and load-time validation

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrUnknownIngredient = errors.New("ingredient not in catalog")
	ErrUnknownTier       = errors.New("unknown price tier")

	// ErrPricingDataMissing indicates a store profile that cannot price the
	// full ingredient cross-product. Catalogs are static, so this is a
	// programmer error caught at load time, never per-request.
	ErrPricingDataMissing = errors.New("pricing data missing")
)
