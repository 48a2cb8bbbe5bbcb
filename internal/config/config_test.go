package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Port)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	file := Config{Provider: "ollama", Model: "llama3.2", Port: 9000}
	if err := file.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Setenv("AGROBOT_MODEL", "gemini-1.5-flash")
	t.Setenv("OPENWEATHER_API_KEY", "weather-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("provider = %q, want file value ollama", cfg.Provider)
	}
	if cfg.Model != "gemini-1.5-flash" {
		t.Errorf("model = %q, env must win over file", cfg.Model)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000 from file", cfg.Port)
	}
	if cfg.WeatherAPIKey != "weather-key" {
		t.Errorf("weather key = %q, want env value", cfg.WeatherAPIKey)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want default", cfg.Provider)
	}
}
