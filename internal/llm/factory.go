package llm

import (
	"context"
	"fmt"

	"github.com/lunara-health/lunara/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout, retry, and audit-logging middleware:
// caller -> timeout -> retry -> logging -> base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, events)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}
