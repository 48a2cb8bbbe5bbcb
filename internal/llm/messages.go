package llm

import (
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// promptMessages pairs the system instruction with the single user turn.
// The pipeline is single-shot; there is no history to carry.
func promptMessages(system, user string) []llms.MessageContent {
	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
}

func firstChoice(resp *llms.ContentResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
