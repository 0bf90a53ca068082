package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/ports/outbound"
)

const generatorSystemPrompt = `You convert dish names into grocery shopping lists. ` +
	`Respond with ONLY a JSON array, no prose and no code fences. Each element must be ` +
	`{"name": string, "quantity": number, "unit": string} using common US grocery ` +
	`ingredient names in lowercase, for example "chicken breast" or "olive oil". ` +
	`List 4 to 12 ingredients.`

// IngredientGenerator asks the LLM for a structured ingredient list. The
// caller validates the result against the catalog; this type only enforces
// the wire shape.
type IngredientGenerator struct {
	client outbound.AIService
	logger *zap.Logger
}

// NewIngredientGenerator wires a generator to an LLM client.
func NewIngredientGenerator(client outbound.AIService, logger *zap.Logger) outbound.RecipeGenerator {
	return &IngredientGenerator{
		client: client,
		logger: logger.Named("ingredient-generator"),
	}
}

// GenerateIngredients proposes ingredient lines for a dish. Model output
// that is not a JSON array, even after stripping stray code fences, is an
// error, there is no partial parse.
func (g *IngredientGenerator) GenerateIngredients(ctx context.Context, foodItem string) ([]outbound.GeneratedLine, error) {
	user := fmt.Sprintf("Dish: %s", foodItem)

	raw, err := g.client.Complete(ctx, generatorSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("ingredient generation: %w", err)
	}

	lines, err := parseGeneratedLines(raw)
	if err != nil {
		g.logger.Warn("Unparseable ingredient generation output",
			zap.String("food_item", foodItem),
			zap.Error(err))
		return nil, err
	}

	g.logger.Info("Generated ingredients",
		zap.String("food_item", foodItem),
		zap.Int("count", len(lines)))
	return lines, nil
}

// parseGeneratedLines tolerates markdown code fences around the array but
// nothing else.
func parseGeneratedLines(raw string) ([]outbound.GeneratedLine, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	var lines []outbound.GeneratedLine
	if err := json.Unmarshal([]byte(s), &lines); err != nil {
		return nil, fmt.Errorf("decode generated ingredients: %w", err)
	}

	out := lines[:0]
	for _, line := range lines {
		line.Name = strings.ToLower(strings.TrimSpace(line.Name))
		if line.Name == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}
