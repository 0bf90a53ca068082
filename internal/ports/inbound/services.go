// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/grocerly/v1/internal/domain/shopping"
)

// ShoppingService defines the use cases for shopping-list optimization
// This is the primary port that HTTP handlers and other driving adapters will use
type ShoppingService interface {
	// GenerateShoppingList resolves a food item to ingredients, optimizes
	// store assignment under the constraints, and formats the result.
	GenerateShoppingList(ctx context.Context, cmd GenerateListCommand) (*ShoppingListResult, error)

	// Queries over the static catalog
	Recipes(ctx context.Context) map[string][]string
	Stores(ctx context.Context) map[string]string
}

// ChatService answers free-form grocery questions.
type ChatService interface {
	Chat(ctx context.Context, message string) (ChatResult, error)
}

// GenerateListCommand contains the inputs for one optimization run.
// A zero Budget means unconstrained; PriceTier may be empty.
type GenerateListCommand struct {
	FoodItem  string
	Budget    float64
	MaxStores int
	PriceTier string
}

// ShoppingListResult bundles the structured allocation with its display text.
type ShoppingListResult struct {
	FoodItem    string              `json:"food_item"`
	Allocation  shopping.Allocation `json:"allocation"`
	FormattedAs string              `json:"formatted_list"`
	AIGenerated bool                `json:"ai_generated"`
}

// ChatResult carries a chat reply and whether it was served from cache.
type ChatResult struct {
	Reply  string `json:"reply"`
	Cached bool   `json:"cached"`
}
