package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

type OpenAI struct {
	client *openai.LLM
}

func NewOpenAI(o Options) (*OpenAI, error) {
	opts := []openai.Option{}
	if o.Model != "" {
		opts = append(opts, openai.WithModel(o.Model))
	}
	if o.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(o.BaseURL))
	}
	if o.APIKey != "" {
		opts = append(opts, openai.WithToken(o.APIKey))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return &OpenAI{client: client}, nil
}

func (a *OpenAI) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, promptMessages(system, user))
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}
