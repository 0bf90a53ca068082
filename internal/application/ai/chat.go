// Package ai provides the application layer for LLM-backed features: the
// grocery chat assistant and ingredient generation for unknown dishes.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/infrastructure/monitoring"
	"github.com/grocerly/v1/internal/ports/inbound"
	"github.com/grocerly/v1/internal/ports/outbound"
)

const chatSystemPrompt = `You are a helpful grocery shopping assistant. You know common recipes, ` +
	`grocery store price levels, and budgeting strategies. Answer briefly and concretely. ` +
	`Stay on grocery and cooking topics.`

// ChatService answers grocery questions through the configured LLM, caching
// replies by message digest and degrading to canned tips when the upstream
// is unavailable.
type ChatService struct {
	client  outbound.AIService
	cache   outbound.CacheRepository
	ttl     time.Duration
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewChatService creates the chat service. cache may be nil to disable
// reply caching.
func NewChatService(
	client outbound.AIService,
	cache outbound.CacheRepository,
	ttl time.Duration,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) inbound.ChatService {
	return &ChatService{
		client:  client,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger.Named("chat-service"),
	}
}

// Chat returns a reply for the message, from cache when possible. The
// upstream gets one retry before the canned fallback takes over; the
// fallback is never cached so a recovered upstream wins next time.
func (s *ChatService) Chat(ctx context.Context, message string) (inbound.ChatResult, error) {
	key := chatCacheKey(message)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && len(cached) > 0 {
			s.metrics.RecordChatCacheHit()
			return inbound.ChatResult{Reply: string(cached), Cached: true}, nil
		}
	}

	reply, err := s.client.Complete(ctx, chatSystemPrompt, message)
	if err != nil {
		s.logger.Warn("Chat completion failed, retrying once", zap.Error(err))
		reply, err = s.client.Complete(ctx, chatSystemPrompt, message)
	}
	if err != nil {
		s.metrics.RecordAIFallback("chat")
		s.logger.Warn("Chat completion failed after retry, using canned reply", zap.Error(err))
		return inbound.ChatResult{Reply: cannedReply(message)}, nil
	}

	reply = strings.TrimSpace(reply)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, []byte(reply), s.ttl); err != nil {
			s.logger.Debug("Chat cache write failed", zap.Error(err))
		}
	}
	return inbound.ChatResult{Reply: reply}, nil
}

func chatCacheKey(message string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(message))))
	return "chat:" + hex.EncodeToString(sum[:])
}

// cannedReply picks a deterministic offline answer keyed on what the
// message seems to be about.
func cannedReply(message string) string {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "budget") || strings.Contains(m, "save") || strings.Contains(m, "cheap"):
		return "For the best value, buy pantry staples at discount stores like Aldi or Walmart " +
			"and pick up fresh produce where it is on promotion. Setting a budget when you " +
			"generate a shopping list will spread purchases across stores automatically."
	case strings.Contains(m, "store") || strings.Contains(m, "where"):
		return "Aldi and Walmart are the strongest on price, Kroger is solid for fresh produce " +
			"and dairy, Trader Joe's has quality store brands, and Whole Foods carries premium " +
			"and organic options."
	case strings.Contains(m, "recipe") || strings.Contains(m, "cook") || strings.Contains(m, "make"):
		return "Tell me a dish, like guacamole or chicken curry, and I can turn it into a " +
			"priced shopping list. The recipes endpoint lists everything built in."
	default:
		return "I can help you plan grocery shopping: ask about recipes, store price levels, " +
			"or generate an optimized shopping list for any dish with a budget."
	}
}
