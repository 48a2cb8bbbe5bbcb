package llm

import "context"

// Generator abstracts the generative-language backend: one system
// instruction, one user turn, one text completion back.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// Options carries the credentials and model selection for a backend. The
// values are bound once at startup and injected here; adapters never read
// ambient process state.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}
