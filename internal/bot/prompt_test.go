package bot

import (
	"strings"
	"testing"
	"time"
)

func TestSystemPromptUnknownLocation(t *testing.T) {
	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	got := systemPrompt(now, nil)

	if !strings.Contains(got, "latitude unknown, longitude unknown") {
		t.Fatalf("missing unknown-location marker:\n%s", got)
	}
	if !strings.Contains(got, "Current Date: Monday, March 03, 2025.") {
		t.Fatalf("missing human-readable date:\n%s", got)
	}
	if !strings.Contains(got, "Respond in both Hindi and English") {
		t.Fatalf("missing bilingual directive:\n%s", got)
	}
}

func TestSystemPromptWithCoords(t *testing.T) {
	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	got := systemPrompt(now, &Coords{Lat: 19.07, Lon: 72.87})

	if !strings.Contains(got, "latitude 19.07, longitude 72.87") {
		t.Fatalf("coordinates not embedded:\n%s", got)
	}
}
