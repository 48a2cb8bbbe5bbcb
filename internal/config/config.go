package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings: bound once at startup, treated as
// immutable afterwards, and handed to components by value.
type Config struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	BaseURL  string `json:"base_url,omitempty"`
	APIKey   string `json:"api_key,omitempty"`

	WeatherAPIKey string `json:"weather_api_key,omitempty"`
	TelegramToken string `json:"telegram_token,omitempty"`

	Port      int    `json:"port,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
}

func Default() Config {
	return Config{
		Provider:  "gemini",
		Port:      8080,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// DefaultPath is where the setup wizard writes its config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "agrobot.json"
	}
	return filepath.Join(home, ".agrobot", "config.json")
}

// Load resolves the effective configuration: defaults, then the JSON config
// file if present, then environment variables (which always win). A .env
// file in the working directory is honored.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err == nil {
			cfg.merge(fileCfg)
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the parent directory if needed.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) merge(file *Config) {
	if file.Provider != "" {
		c.Provider = file.Provider
	}
	if file.Model != "" {
		c.Model = file.Model
	}
	if file.BaseURL != "" {
		c.BaseURL = file.BaseURL
	}
	if file.APIKey != "" {
		c.APIKey = file.APIKey
	}
	if file.WeatherAPIKey != "" {
		c.WeatherAPIKey = file.WeatherAPIKey
	}
	if file.TelegramToken != "" {
		c.TelegramToken = file.TelegramToken
	}
	if file.Port != 0 {
		c.Port = file.Port
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		c.LogFormat = file.LogFormat
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AGROBOT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("AGROBOT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGROBOT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AGROBOT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("AGROBOT_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("AGROBOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AGROBOT_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
