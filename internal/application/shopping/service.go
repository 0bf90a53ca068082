// Package shopping provides the application layer for shopping-list
// generation. This implements the use cases defined in the inbound ports.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/domain/catalog"
	"github.com/grocerly/v1/internal/domain/shopping"
	"github.com/grocerly/v1/internal/infrastructure/monitoring"
	"github.com/grocerly/v1/internal/ports/inbound"
	"github.com/grocerly/v1/internal/ports/outbound"
)

// DefaultMaxStores applies when neither the request nor the service
// configuration limits store count.
const DefaultMaxStores = 3

// minGeneratedLines is the floor below which AI-proposed ingredient lists
// are considered too thin to shop from.
const minGeneratedLines = 3

// Service implements the shopping-list use cases.
type Service struct {
	catalog          *catalog.Catalog
	optimizer        *shopping.Optimizer
	generator        outbound.RecipeGenerator
	defaultMaxStores int
	metrics          *monitoring.Metrics
	logger           *zap.Logger
}

// NewService creates the shopping service. generator may be nil, in which
// case unknown food items fail with ErrRecipeNotFound instead of degrading
// to AI-generated ingredients. defaultMaxStores applies to requests that do
// not set a store limit; values below 1 fall back to DefaultMaxStores.
func NewService(
	c *catalog.Catalog,
	optimizer *shopping.Optimizer,
	generator outbound.RecipeGenerator,
	defaultMaxStores int,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) inbound.ShoppingService {
	if defaultMaxStores < 1 {
		defaultMaxStores = DefaultMaxStores
	}
	return &Service{
		catalog:          c,
		optimizer:        optimizer,
		generator:        generator,
		defaultMaxStores: defaultMaxStores,
		metrics:          metrics,
		logger:           logger.Named("shopping-service"),
	}
}

// GenerateShoppingList resolves the food item, optimizes store assignment
// and renders the display text.
func (s *Service) GenerateShoppingList(ctx context.Context, cmd inbound.GenerateListCommand) (*inbound.ShoppingListResult, error) {
	tier, err := catalog.ParseTier(cmd.PriceTier)
	if err != nil {
		return nil, err
	}

	lines, aiGenerated, err := s.resolveLines(ctx, cmd.FoodItem)
	if err != nil {
		s.metrics.RecordShoppingOutcome("recipe_not_found")
		return nil, err
	}

	maxStores := cmd.MaxStores
	if maxStores == 0 {
		maxStores = s.defaultMaxStores
	}

	start := time.Now()
	alloc, err := s.optimizer.Optimize(shopping.Request{
		Lines:     lines,
		Budget:    cmd.Budget,
		MaxStores: maxStores,
		Tier:      tier,
	})
	s.metrics.RecordOptimizeDuration(time.Since(start))
	if err != nil {
		var infeasible *shopping.InfeasibleError
		if errors.As(err, &infeasible) {
			s.metrics.RecordShoppingOutcome("infeasible")
			s.logger.Info("Budget infeasible",
				zap.String("food_item", cmd.FoodItem),
				zap.Float64("budget", cmd.Budget),
				zap.Float64("cheapest_total", infeasible.CheapestTotal))
		} else {
			s.metrics.RecordShoppingOutcome("error")
		}
		return nil, err
	}

	s.metrics.RecordShoppingOutcome("ok")
	s.logger.Info("Shopping list generated",
		zap.String("food_item", cmd.FoodItem),
		zap.Float64("total_cost", alloc.TotalCost),
		zap.Strings("stores", alloc.StoresUsed),
		zap.Bool("ai_generated", aiGenerated))

	return &inbound.ShoppingListResult{
		FoodItem:    cmd.FoodItem,
		Allocation:  alloc,
		FormattedAs: shopping.FormatList(cmd.FoodItem, alloc),
		AIGenerated: aiGenerated,
	}, nil
}

// resolveLines returns catalog recipe lines for the food item, falling back
// to AI-generated ingredients for unknown dishes. Generated lines that do
// not resolve against the catalog are dropped; too few survivors mean the
// generic staples list instead.
func (s *Service) resolveLines(ctx context.Context, foodItem string) ([]catalog.RecipeLine, bool, error) {
	rec, err := s.catalog.Resolve(foodItem)
	if err == nil {
		return rec.Lines, false, nil
	}
	if !errors.Is(err, catalog.ErrRecipeNotFound) {
		return nil, false, err
	}
	if s.generator == nil {
		return nil, false, err
	}

	generated, genErr := s.generator.GenerateIngredients(ctx, foodItem)
	if genErr != nil {
		s.logger.Warn("Ingredient generation failed",
			zap.String("food_item", foodItem),
			zap.Error(genErr))
		return nil, false, fmt.Errorf("%w: %q", catalog.ErrRecipeNotFound, foodItem)
	}

	lines := s.validateGenerated(foodItem, generated)
	if len(lines) < minGeneratedLines {
		s.metrics.RecordAIFallback("ingredients")
		s.logger.Warn("Too few usable generated ingredients, using generic list",
			zap.String("food_item", foodItem),
			zap.Int("usable", len(lines)))
		return s.catalog.GenericLines(), true, nil
	}
	return lines, true, nil
}

func (s *Service) validateGenerated(foodItem string, generated []outbound.GeneratedLine) []catalog.RecipeLine {
	lines := make([]catalog.RecipeLine, 0, len(generated))
	for _, g := range generated {
		ing, ok := s.catalog.Ingredient(g.Name)
		if !ok {
			s.logger.Debug("Dropping generated ingredient not in catalog",
				zap.String("food_item", foodItem),
				zap.String("ingredient", g.Name))
			continue
		}
		qty := g.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, catalog.RecipeLine{
			Ingredient: ing.Name,
			Quantity:   qty,
			Unit:       g.Unit,
		})
	}
	return lines
}

// Recipes lists the built-in recipes grouped by cuisine.
func (s *Service) Recipes(ctx context.Context) map[string][]string {
	return s.catalog.RecipesByCuisine()
}

// Stores lists the store directory with descriptions.
func (s *Service) Stores(ctx context.Context) map[string]string {
	return s.catalog.StoreDescriptions()
}
