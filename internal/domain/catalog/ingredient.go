// Package catalog contains the static ingredient, store and recipe tables
// together with the lookup logic built on top of them. The tables are loaded
// once at process start and treated as read-only afterwards.
package catalog

// Category classifies an ingredient for pricing purposes. Stores may define
// category-specific multiplier overrides.
type Category string

const (
	CategoryMeat    Category = "Meat"
	CategoryProduce Category = "Produce"
	CategoryDairy   Category = "Dairy"
	CategoryPantry  Category = "Pantry"
	CategorySeafood Category = "Seafood"
	CategoryOther   Category = "Other"
)

// Ingredient is a single purchasable item. BasePrice is the market price for
// one purchase unit before any store multiplier is applied. Seasonal items
// (produce) are additionally subject to a store's seasonal adjustment.
type Ingredient struct {
	Name      string
	Category  Category
	BasePrice float64
	Seasonal  bool
}
