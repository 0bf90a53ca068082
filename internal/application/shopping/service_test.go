package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/domain/catalog"
	"github.com/grocerly/v1/internal/domain/shopping"
	"github.com/grocerly/v1/internal/ports/inbound"
	"github.com/grocerly/v1/internal/ports/outbound"
)

type stubGenerator struct {
	lines []outbound.GeneratedLine
	err   error
	calls int
}

func (g *stubGenerator) GenerateIngredients(ctx context.Context, foodItem string) ([]outbound.GeneratedLine, error) {
	g.calls++
	return g.lines, g.err
}

func newTestService(t *testing.T, generator outbound.RecipeGenerator) inbound.ShoppingService {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	optimizer := shopping.NewOptimizer(c, shopping.DefaultScoringWeights())
	return NewService(c, optimizer, generator, DefaultMaxStores, nil, zap.NewNop())
}

func TestGenerateShoppingListKnownRecipe(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem:  "guacamole",
		Budget:    12,
		MaxStores: 2,
		PriceTier: "budget",
	})
	require.NoError(t, err)

	assert.False(t, result.AIGenerated)
	assert.InDelta(t, 9.24, result.Allocation.TotalCost, 1e-9)
	assert.Equal(t, []string{"Kroger", "Walmart"}, result.Allocation.StoresUsed)
	assert.Contains(t, result.FormattedAs, "Total: $9.24")
}

func TestGenerateShoppingListDefaultsMaxStores(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem: "guacamole",
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Allocation.StoresUsed), DefaultMaxStores)
}

func TestGenerateShoppingListConfiguredDefaultMaxStores(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	optimizer := shopping.NewOptimizer(c, shopping.DefaultScoringWeights())
	svc := NewService(c, optimizer, nil, 1, nil, zap.NewNop())

	result, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem: "guacamole",
	})
	require.NoError(t, err)
	assert.Len(t, result.Allocation.StoresUsed, 1)
}

func TestGenerateShoppingListUnknownTier(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem:  "guacamole",
		PriceTier: "luxury",
	})
	assert.ErrorIs(t, err, catalog.ErrUnknownTier)
}

func TestGenerateShoppingListUnknownItemWithoutGenerator(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem: "dragonfruit flambe",
	})
	assert.ErrorIs(t, err, catalog.ErrRecipeNotFound)
}

func TestGenerateShoppingListUsesGeneratedIngredients(t *testing.T) {
	gen := &stubGenerator{lines: []outbound.GeneratedLine{
		{Name: "Chicken Breast", Quantity: 1, Unit: "lb"},
		{Name: "rice", Quantity: 1, Unit: "5lb bag"},
		{Name: "broccoli", Quantity: 1, Unit: "head"},
		{Name: "soy sauce", Quantity: 1, Unit: "16oz"},
	}}
	svc := newTestService(t, gen)

	result, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem:  "teriyaki bowl",
		MaxStores: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.True(t, result.AIGenerated)
	require.Len(t, result.Allocation.Lines, 4)
	assert.Equal(t, "chicken breast", result.Allocation.Lines[0].Ingredient)
}

func TestGenerateShoppingListDropsHallucinatedIngredients(t *testing.T) {
	gen := &stubGenerator{lines: []outbound.GeneratedLine{
		{Name: "powdered unicorn horn", Quantity: 1},
		{Name: "rice", Quantity: 1, Unit: "5lb bag"},
		{Name: "essence of moonlight", Quantity: 2},
	}}
	svc := newTestService(t, gen)

	result, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem: "wizard stew",
	})
	require.NoError(t, err)

	// Only one generated line survived validation, so the generic staples
	// list takes over.
	assert.True(t, result.AIGenerated)
	require.Len(t, result.Allocation.Lines, 5)
	assert.Equal(t, "main protein", result.Allocation.Lines[0].Ingredient)
}

func TestGenerateShoppingListGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	svc := newTestService(t, gen)

	_, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem: "mystery dish",
	})
	assert.ErrorIs(t, err, catalog.ErrRecipeNotFound)
}

func TestGenerateShoppingListInfeasibleBudget(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.GenerateShoppingList(context.Background(), inbound.GenerateListCommand{
		FoodItem:  "guacamole",
		Budget:    5,
		MaxStores: 2,
		PriceTier: "budget",
	})
	var infeasible *shopping.InfeasibleError
	require.True(t, errors.As(err, &infeasible))
	assert.InDelta(t, 3.59, infeasible.Shortfall(), 1e-9)
}

func TestRecipesAndStores(t *testing.T) {
	svc := newTestService(t, nil)

	recipes := svc.Recipes(context.Background())
	assert.Contains(t, recipes["Mexican"], "guacamole")

	stores := svc.Stores(context.Background())
	assert.Len(t, stores, 6)
	assert.Contains(t, stores, "Whole Foods")
}
