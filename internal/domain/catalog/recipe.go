package catalog

// RecipeLine is one entry on a recipe's shopping list: a reference to a
// cataloged ingredient plus how much of it to buy. Quantity counts purchase
// units; Unit is display text only.
type RecipeLine struct {
	Ingredient string
	Quantity   float64
	Unit       string
}

// Recipe maps a dish to the ingredient lines needed to cook it. Line order
// is preserved for display but has no effect on optimization.
type Recipe struct {
	Name    string
	Cuisine string
	Lines   []RecipeLine
}
