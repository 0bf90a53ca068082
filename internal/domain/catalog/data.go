package catalog

// Static pricing and recipe data. Base prices approximate 2024 US market
// rates for one purchase unit. Store multipliers reflect each chain's
// typical position relative to market; category overrides capture
// specialization (deep pantry discounts at the discounters, a softer
// markup on seafood at the premium chain, a produce edge at Kroger).

// storeTable is in canonical (alphabetical) order. Tie-breaking between
// equally scored allocations follows this order, so keep it sorted.
var storeTable = []Store{
	{
		Name:               "Aldi",
		Tier:               TierBudget,
		Multiplier:         0.75,
		CategoryOverrides:  map[Category]float64{CategoryPantry: 0.65},
		SeasonalAdjustment: 1.10,
		Description:        "Budget-friendly store brands, typically 25-35% below market",
	},
	{
		Name:               "Kroger",
		Tier:               TierMidRange,
		Multiplier:         1.00,
		CategoryOverrides:  map[Category]float64{CategoryProduce: 0.90},
		SeasonalAdjustment: 0.95,
		Description:        "Traditional grocery with strong fresh produce and dairy",
	},
	{
		Name:               "Target",
		Tier:               TierMidRange,
		Multiplier:         1.05,
		SeasonalAdjustment: 1.15,
		Description:        "Convenience-focused, at or slightly above market prices",
	},
	{
		Name:               "Trader Joe's",
		Tier:               TierMidRange,
		Multiplier:         1.10,
		CategoryOverrides:  map[Category]float64{CategoryDairy: 1.00},
		SeasonalAdjustment: 1.00,
		Description:        "Quality store brands, 5-15% premium on most items",
	},
	{
		Name:               "Walmart",
		Tier:               TierBudget,
		Multiplier:         0.95,
		CategoryOverrides:  map[Category]float64{CategoryPantry: 0.85},
		SeasonalAdjustment: 1.10,
		Description:        "Good value across the board, 5-25% below market",
	},
	{
		Name:               "Whole Foods",
		Tier:               TierPremium,
		Multiplier:         1.60,
		CategoryOverrides:  map[Category]float64{CategorySeafood: 1.45},
		SeasonalAdjustment: 1.25,
		Description:        "Premium and organic, 40-80% above market",
	},
}

var ingredientTable = []Ingredient{
	// Meat
	{Name: "chicken breast", Category: CategoryMeat, BasePrice: 4.99},
	{Name: "ground beef", Category: CategoryMeat, BasePrice: 5.99},
	{Name: "beef strips", Category: CategoryMeat, BasePrice: 8.99},
	{Name: "beef chuck", Category: CategoryMeat, BasePrice: 6.99},
	{Name: "turkey", Category: CategoryMeat, BasePrice: 3.99},
	{Name: "bacon", Category: CategoryMeat, BasePrice: 7.99},
	{Name: "pepperoni", Category: CategoryMeat, BasePrice: 4.99},

	// Seafood
	{Name: "salmon fillets", Category: CategorySeafood, BasePrice: 12.99},
	{Name: "white fish fillets", Category: CategorySeafood, BasePrice: 9.99},
	{Name: "shrimp", Category: CategorySeafood, BasePrice: 12.99},

	// Produce (all seasonal)
	{Name: "avocado", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "lime", Category: CategoryProduce, BasePrice: 0.69, Seasonal: true},
	{Name: "lemon", Category: CategoryProduce, BasePrice: 0.99, Seasonal: true},
	{Name: "onion", Category: CategoryProduce, BasePrice: 1.49, Seasonal: true},
	{Name: "red onion", Category: CategoryProduce, BasePrice: 1.29, Seasonal: true},
	{Name: "garlic", Category: CategoryProduce, BasePrice: 0.99, Seasonal: true},
	{Name: "ginger", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "tomatoes", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "cherry tomatoes", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},
	{Name: "lettuce", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "mixed greens", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},
	{Name: "cucumber", Category: CategoryProduce, BasePrice: 1.49, Seasonal: true},
	{Name: "cilantro", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "parsley", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "dill", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "basil", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "bell peppers", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "carrots", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "celery", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "broccoli", Category: CategoryProduce, BasePrice: 2.49, Seasonal: true},
	{Name: "spinach", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "cabbage", Category: CategoryProduce, BasePrice: 1.99, Seasonal: true},
	{Name: "asparagus", Category: CategoryProduce, BasePrice: 4.99, Seasonal: true},
	{Name: "zucchini", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "snow peas", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},
	{Name: "mushrooms", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},
	{Name: "green beans", Category: CategoryProduce, BasePrice: 2.99, Seasonal: true},
	{Name: "potatoes", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},

	// Dairy
	{Name: "mozzarella cheese", Category: CategoryDairy, BasePrice: 4.99},
	{Name: "parmesan cheese", Category: CategoryDairy, BasePrice: 5.99},
	{Name: "cheddar cheese", Category: CategoryDairy, BasePrice: 4.99},
	{Name: "feta cheese", Category: CategoryDairy, BasePrice: 4.99},
	{Name: "ricotta cheese", Category: CategoryDairy, BasePrice: 4.99},
	{Name: "sour cream", Category: CategoryDairy, BasePrice: 2.99},
	{Name: "heavy cream", Category: CategoryDairy, BasePrice: 3.99},
	{Name: "milk", Category: CategoryDairy, BasePrice: 3.99},
	{Name: "eggs", Category: CategoryDairy, BasePrice: 4.99},
	{Name: "butter", Category: CategoryDairy, BasePrice: 4.99},

	// Pantry (dry goods, bakery, condiments, spices)
	{Name: "spaghetti", Category: CategoryPantry, BasePrice: 1.99},
	{Name: "fettuccine", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "linguine", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "penne", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "lasagna noodles", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "rice", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "flour", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "breadcrumbs", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "bread", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "tortillas", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "hamburger buns", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "pizza dough", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "olive oil", Category: CategoryPantry, BasePrice: 8.99},
	{Name: "sesame oil", Category: CategoryPantry, BasePrice: 4.99},
	{Name: "cooking oil", Category: CategoryPantry, BasePrice: 4.99},
	{Name: "tomato sauce", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "tomato paste", Category: CategoryPantry, BasePrice: 1.99},
	{Name: "coconut milk", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "soy sauce", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "chicken broth", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "beef broth", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "vegetable broth", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "kidney beans", Category: CategoryPantry, BasePrice: 1.99},
	{Name: "mayonnaise", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "mustard", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "ketchup", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "balsamic vinegar", Category: CategoryPantry, BasePrice: 4.99},
	{Name: "worcestershire sauce", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "white wine", Category: CategoryPantry, BasePrice: 8.99},
	{Name: "orange juice", Category: CategoryPantry, BasePrice: 4.99},
	{Name: "salt", Category: CategoryPantry, BasePrice: 1.99},
	{Name: "black pepper", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "italian seasoning", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "curry powder", Category: CategoryPantry, BasePrice: 3.99},
	{Name: "chili powder", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "cumin", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "taco seasoning", Category: CategoryPantry, BasePrice: 1.99},
	{Name: "fajita seasoning", Category: CategoryPantry, BasePrice: 1.99},

	// Generic entries backing the fallback shopping list
	{Name: "main protein", Category: CategoryMeat, BasePrice: 8.99},
	{Name: "vegetables", Category: CategoryProduce, BasePrice: 3.99, Seasonal: true},
	{Name: "starch", Category: CategoryPantry, BasePrice: 2.99},
	{Name: "seasonings", Category: CategoryPantry, BasePrice: 1.99},
}

var recipeTable = []Recipe{
	{Name: "pizza", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "pizza dough", Quantity: 1, Unit: "16oz package"},
		{Ingredient: "tomato sauce", Quantity: 1, Unit: "24oz jar"},
		{Ingredient: "mozzarella cheese", Quantity: 1, Unit: "8oz"},
		{Ingredient: "pepperoni", Quantity: 1, Unit: "6oz package"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "italian seasoning", Quantity: 1, Unit: "2oz"},
	}},
	{Name: "pasta", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "spaghetti", Quantity: 1, Unit: "lb"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "parmesan cheese", Quantity: 1, Unit: "8oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},
	{Name: "spaghetti carbonara", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "spaghetti", Quantity: 1, Unit: "lb"},
		{Ingredient: "bacon", Quantity: 1, Unit: "8oz"},
		{Ingredient: "eggs", Quantity: 1, Unit: "dozen"},
		{Ingredient: "parmesan cheese", Quantity: 1, Unit: "cup grated"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
	}},
	{Name: "chicken alfredo", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "fettuccine", Quantity: 1, Unit: "lb"},
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "heavy cream", Quantity: 1, Unit: "cup"},
		{Ingredient: "parmesan cheese", Quantity: 1, Unit: "cup grated"},
		{Ingredient: "butter", Quantity: 1, Unit: "lb"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
	}},
	{Name: "chicken parmesan", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "breadcrumbs", Quantity: 1, Unit: "cup"},
		{Ingredient: "eggs", Quantity: 1, Unit: "dozen"},
		{Ingredient: "mozzarella cheese", Quantity: 1, Unit: "8oz shredded"},
		{Ingredient: "parmesan cheese", Quantity: 1, Unit: "1/2 cup grated"},
		{Ingredient: "tomato sauce", Quantity: 1, Unit: "24oz jar"},
		{Ingredient: "spaghetti", Quantity: 1, Unit: "lb"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
	}},
	{Name: "pasta primavera", Cuisine: "Italian", Lines: []RecipeLine{
		{Ingredient: "penne", Quantity: 1, Unit: "lb"},
		{Ingredient: "broccoli", Quantity: 1, Unit: "head"},
		{Ingredient: "bell peppers", Quantity: 2, Unit: "large"},
		{Ingredient: "cherry tomatoes", Quantity: 1, Unit: "pint"},
		{Ingredient: "zucchini", Quantity: 2, Unit: "medium"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "parmesan cheese", Quantity: 1, Unit: "cup grated"},
		{Ingredient: "basil", Quantity: 1, Unit: "bunch"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},

	{Name: "tacos", Cuisine: "Mexican", Lines: []RecipeLine{
		{Ingredient: "ground beef", Quantity: 1, Unit: "lb"},
		{Ingredient: "taco seasoning", Quantity: 1, Unit: "packet"},
		{Ingredient: "tortillas", Quantity: 1, Unit: "10 count"},
		{Ingredient: "lettuce", Quantity: 1, Unit: "head"},
		{Ingredient: "tomatoes", Quantity: 2, Unit: "large"},
		{Ingredient: "cheddar cheese", Quantity: 1, Unit: "8oz shredded"},
		{Ingredient: "sour cream", Quantity: 1, Unit: "8oz"},
	}},
	// Quantities for guacamole follow the classic party-batch recipe.
	{Name: "guacamole", Cuisine: "Mexican", Lines: []RecipeLine{
		{Ingredient: "avocado", Quantity: 3, Unit: "large"},
		{Ingredient: "lime", Quantity: 2, Unit: "medium"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
	}},
	{Name: "fish tacos", Cuisine: "Mexican", Lines: []RecipeLine{
		{Ingredient: "white fish fillets", Quantity: 1, Unit: "lb"},
		{Ingredient: "tortillas", Quantity: 1, Unit: "10 count"},
		{Ingredient: "cabbage", Quantity: 1, Unit: "small head"},
		{Ingredient: "lime", Quantity: 3, Unit: "medium"},
		{Ingredient: "cilantro", Quantity: 1, Unit: "bunch"},
		{Ingredient: "sour cream", Quantity: 1, Unit: "8oz"},
		{Ingredient: "avocado", Quantity: 2, Unit: "large"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
	}},
	{Name: "beef tacos", Cuisine: "Mexican", Lines: []RecipeLine{
		{Ingredient: "ground beef", Quantity: 1, Unit: "lb"},
		{Ingredient: "taco seasoning", Quantity: 1, Unit: "packet"},
		{Ingredient: "tortillas", Quantity: 1, Unit: "10 count"},
		{Ingredient: "lettuce", Quantity: 1, Unit: "head"},
		{Ingredient: "tomatoes", Quantity: 2, Unit: "large"},
		{Ingredient: "cheddar cheese", Quantity: 1, Unit: "8oz shredded"},
		{Ingredient: "sour cream", Quantity: 1, Unit: "8oz"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
	}},
	{Name: "chicken fajitas", Cuisine: "Mexican", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "bell peppers", Quantity: 3, Unit: "large"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "tortillas", Quantity: 1, Unit: "10 count"},
		{Ingredient: "sour cream", Quantity: 1, Unit: "8oz"},
		{Ingredient: "cheddar cheese", Quantity: 1, Unit: "8oz shredded"},
		{Ingredient: "lime", Quantity: 2, Unit: "medium"},
		{Ingredient: "cilantro", Quantity: 1, Unit: "bunch"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "fajita seasoning", Quantity: 1, Unit: "packet"},
	}},

	{Name: "chicken curry", Cuisine: "Asian", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "ginger", Quantity: 1, Unit: "piece"},
		{Ingredient: "curry powder", Quantity: 1, Unit: "2oz"},
		{Ingredient: "coconut milk", Quantity: 1, Unit: "13.5oz can"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "cilantro", Quantity: 1, Unit: "bunch"},
	}},
	{Name: "stir fry", Cuisine: "Asian", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "broccoli", Quantity: 1, Unit: "head"},
		{Ingredient: "bell peppers", Quantity: 2, Unit: "large"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "ginger", Quantity: 1, Unit: "piece"},
		{Ingredient: "soy sauce", Quantity: 1, Unit: "16oz"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "cooking oil", Quantity: 1, Unit: "16oz"},
	}},
	{Name: "beef stir fry", Cuisine: "Asian", Lines: []RecipeLine{
		{Ingredient: "beef strips", Quantity: 1, Unit: "lb"},
		{Ingredient: "broccoli", Quantity: 1, Unit: "head"},
		{Ingredient: "bell peppers", Quantity: 2, Unit: "large"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "soy sauce", Quantity: 1, Unit: "16oz"},
		{Ingredient: "sesame oil", Quantity: 1, Unit: "8oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "ginger", Quantity: 1, Unit: "piece"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
	}},
	{Name: "vegetable stir fry", Cuisine: "Asian", Lines: []RecipeLine{
		{Ingredient: "broccoli", Quantity: 1, Unit: "head"},
		{Ingredient: "bell peppers", Quantity: 2, Unit: "large"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "snow peas", Quantity: 1, Unit: "8oz"},
		{Ingredient: "mushrooms", Quantity: 1, Unit: "8oz"},
		{Ingredient: "soy sauce", Quantity: 1, Unit: "16oz"},
		{Ingredient: "sesame oil", Quantity: 1, Unit: "8oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "ginger", Quantity: 1, Unit: "piece"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
	}},

	{Name: "barbecue", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "ground beef", Quantity: 2, Unit: "lb"},
		{Ingredient: "hamburger buns", Quantity: 1, Unit: "8 count"},
		{Ingredient: "cheddar cheese", Quantity: 1, Unit: "8oz"},
		{Ingredient: "lettuce", Quantity: 1, Unit: "head"},
		{Ingredient: "tomatoes", Quantity: 2, Unit: "large"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "ketchup", Quantity: 1, Unit: "20oz"},
		{Ingredient: "mustard", Quantity: 1, Unit: "8oz"},
	}},
	{Name: "breakfast", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "eggs", Quantity: 1, Unit: "dozen"},
		{Ingredient: "bacon", Quantity: 1, Unit: "12oz package"},
		{Ingredient: "bread", Quantity: 1, Unit: "loaf"},
		{Ingredient: "butter", Quantity: 1, Unit: "lb"},
		{Ingredient: "milk", Quantity: 1, Unit: "gallon"},
		{Ingredient: "orange juice", Quantity: 1, Unit: "64oz"},
	}},
	{Name: "sandwich", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "bread", Quantity: 1, Unit: "loaf"},
		{Ingredient: "turkey", Quantity: 1, Unit: "lb"},
		{Ingredient: "cheddar cheese", Quantity: 1, Unit: "8oz"},
		{Ingredient: "lettuce", Quantity: 1, Unit: "head"},
		{Ingredient: "tomatoes", Quantity: 2, Unit: "large"},
		{Ingredient: "mayonnaise", Quantity: 1, Unit: "16oz"},
		{Ingredient: "mustard", Quantity: 1, Unit: "8oz"},
	}},
	{Name: "soup", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "celery", Quantity: 1, Unit: "bunch"},
		{Ingredient: "chicken broth", Quantity: 1, Unit: "32oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},
	{Name: "chicken soup", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "chicken breast", Quantity: 1, Unit: "lb"},
		{Ingredient: "chicken broth", Quantity: 1, Unit: "32oz"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "celery", Quantity: 1, Unit: "bunch"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},
	{Name: "beef chili", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "ground beef", Quantity: 1, Unit: "lb"},
		{Ingredient: "kidney beans", Quantity: 2, Unit: "15oz cans"},
		{Ingredient: "tomato sauce", Quantity: 1, Unit: "24oz jar"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "bell peppers", Quantity: 2, Unit: "large"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "chili powder", Quantity: 1, Unit: "2oz"},
		{Ingredient: "cumin", Quantity: 1, Unit: "2oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
	}},
	{Name: "beef stew", Cuisine: "American", Lines: []RecipeLine{
		{Ingredient: "beef chuck", Quantity: 2, Unit: "lb"},
		{Ingredient: "potatoes", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "beef broth", Quantity: 1, Unit: "32oz"},
		{Ingredient: "tomato paste", Quantity: 1, Unit: "6oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "worcestershire sauce", Quantity: 1, Unit: "10oz"},
		{Ingredient: "flour", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},

	{Name: "shrimp scampi", Cuisine: "Seafood", Lines: []RecipeLine{
		{Ingredient: "shrimp", Quantity: 1, Unit: "lb"},
		{Ingredient: "linguine", Quantity: 1, Unit: "lb"},
		{Ingredient: "butter", Quantity: 1, Unit: "lb"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "lemon", Quantity: 2, Unit: "medium"},
		{Ingredient: "white wine", Quantity: 1, Unit: "750ml"},
		{Ingredient: "parsley", Quantity: 1, Unit: "bunch"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},
	{Name: "salmon dinner", Cuisine: "Seafood", Lines: []RecipeLine{
		{Ingredient: "salmon fillets", Quantity: 1, Unit: "lb"},
		{Ingredient: "asparagus", Quantity: 1, Unit: "bunch"},
		{Ingredient: "lemon", Quantity: 2, Unit: "medium"},
		{Ingredient: "butter", Quantity: 1, Unit: "lb"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "rice", Quantity: 1, Unit: "5lb bag"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "dill", Quantity: 1, Unit: "bunch"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
	}},

	{Name: "salad", Cuisine: "Vegetarian", Lines: []RecipeLine{
		{Ingredient: "mixed greens", Quantity: 1, Unit: "5oz bag"},
		{Ingredient: "cherry tomatoes", Quantity: 1, Unit: "pint"},
		{Ingredient: "cucumber", Quantity: 1, Unit: "large"},
		{Ingredient: "red onion", Quantity: 1, Unit: "medium"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "balsamic vinegar", Quantity: 1, Unit: "8oz"},
		{Ingredient: "feta cheese", Quantity: 1, Unit: "6oz crumbled"},
	}},
	{Name: "vegetarian lasagna", Cuisine: "Vegetarian", Lines: []RecipeLine{
		{Ingredient: "lasagna noodles", Quantity: 1, Unit: "package"},
		{Ingredient: "ricotta cheese", Quantity: 1, Unit: "15oz"},
		{Ingredient: "mozzarella cheese", Quantity: 2, Unit: "8oz shredded"},
		{Ingredient: "spinach", Quantity: 1, Unit: "10oz bag"},
		{Ingredient: "tomato sauce", Quantity: 1, Unit: "24oz jar"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
	}},
	{Name: "vegetable soup", Cuisine: "Vegetarian", Lines: []RecipeLine{
		{Ingredient: "vegetable broth", Quantity: 1, Unit: "32oz"},
		{Ingredient: "carrots", Quantity: 1, Unit: "lb"},
		{Ingredient: "celery", Quantity: 1, Unit: "bunch"},
		{Ingredient: "onion", Quantity: 1, Unit: "large"},
		{Ingredient: "potatoes", Quantity: 1, Unit: "lb"},
		{Ingredient: "tomatoes", Quantity: 2, Unit: "large"},
		{Ingredient: "green beans", Quantity: 1, Unit: "lb"},
		{Ingredient: "garlic", Quantity: 1, Unit: "head"},
		{Ingredient: "olive oil", Quantity: 1, Unit: "16oz"},
		{Ingredient: "salt", Quantity: 1, Unit: "26oz"},
		{Ingredient: "black pepper", Quantity: 1, Unit: "4oz"},
		{Ingredient: "italian seasoning", Quantity: 1, Unit: "2oz"},
	}},
}
