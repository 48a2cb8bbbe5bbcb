package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/anthropic"
)

type Anthropic struct {
	client *anthropic.LLM
}

func NewAnthropic(o Options) (*Anthropic, error) {
	opts := []anthropic.Option{}
	if o.Model != "" {
		opts = append(opts, anthropic.WithModel(o.Model))
	}
	if o.APIKey != "" {
		opts = append(opts, anthropic.WithToken(o.APIKey))
	}

	client, err := anthropic.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	return &Anthropic{client: client}, nil
}

func (a *Anthropic) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, promptMessages(system, user))
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}
