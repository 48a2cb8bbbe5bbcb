package llm

import (
	"context"
	"fmt"
)

// NewGenerator builds the adapter for the configured provider.
func NewGenerator(ctx context.Context, provider Provider, opts Options) (Generator, error) {
	switch provider {
	case ProviderGemini:
		return NewGemini(ctx, opts)
	case ProviderOpenAI:
		return NewOpenAI(opts)
	case ProviderOllama:
		return NewOllama(opts)
	case ProviderAnthropic:
		return NewAnthropic(opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
