package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
)

type Ollama struct {
	client *ollama.LLM
}

func NewOllama(o Options) (*Ollama, error) {
	opts := []ollama.Option{}
	if o.Model != "" {
		opts = append(opts, ollama.WithModel(o.Model))
	}
	if o.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(o.BaseURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	return &Ollama{client: client}, nil
}

func (a *Ollama) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, promptMessages(system, user))
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}
