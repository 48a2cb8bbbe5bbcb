package llm

import (
	"context"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

func TestNewGeneratorUnsupportedProvider(t *testing.T) {
	if _, err := NewGenerator(context.Background(), Provider("carrier-pigeon"), Options{}); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestPromptMessages(t *testing.T) {
	msgs := promptMessages("system instruction", "user turn")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != llms.ChatMessageTypeSystem {
		t.Errorf("first message role = %v, want system", msgs[0].Role)
	}
	if msgs[1].Role != llms.ChatMessageTypeHuman {
		t.Errorf("second message role = %v, want human", msgs[1].Role)
	}
}

func TestFirstChoice(t *testing.T) {
	got, err := firstChoice(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "  bilingual answer  "}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bilingual answer" {
		t.Fatalf("got %q, want trimmed content", got)
	}
}

func TestFirstChoiceEmptyResponses(t *testing.T) {
	cases := []*llms.ContentResponse{
		nil,
		{},
		{Choices: []*llms.ContentChoice{{Content: "   "}}},
	}
	for i, resp := range cases {
		if _, err := firstChoice(resp); err == nil {
			t.Errorf("case %d: expected error for empty response", i)
		}
	}
}
