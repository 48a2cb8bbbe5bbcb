package telegram

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		hindi   string
		english string
		want    string
	}{
		{"नमस्ते", "Hello", "नमस्ते\n\nHello"},
		{"same bilingual text", "same bilingual text", "same bilingual text"},
	}
	for _, tt := range tests {
		if got := render(tt.hindi, tt.english); got != tt.want {
			t.Errorf("render(%q, %q) = %q, want %q", tt.hindi, tt.english, got, tt.want)
		}
	}
}
