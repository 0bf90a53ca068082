// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"
)

// AIService is the completion interface implemented by the LLM clients.
// Implementations must honor ctx cancellation and return an error rather
// than block when the upstream is unreachable.
type AIService interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GeneratedLine is one AI-proposed ingredient before catalog validation.
type GeneratedLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeGenerator proposes ingredient lines for food items missing from the
// static recipe table.
type RecipeGenerator interface {
	GenerateIngredients(ctx context.Context, foodItem string) ([]GeneratedLine, error)
}
