package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const defaultGeminiModel = "gemini-1.5-flash"

type Gemini struct {
	client *googleai.GoogleAI
	model  string
}

func NewGemini(ctx context.Context, o Options) (*Gemini, error) {
	model := o.Model
	if model == "" {
		model = defaultGeminiModel
	}

	gopts := []googleai.Option{
		googleai.WithDefaultModel(model),
	}
	if o.APIKey != "" {
		gopts = append(gopts, googleai.WithAPIKey(o.APIKey))
	}

	client, err := googleai.New(ctx, gopts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, promptMessages(system, user), llms.WithModel(g.model))
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}
