package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel      OTelConfig
	OpenAI    OpenAIConfig
	Ephemeris EphemerisConfig
	Cooldown  CooldownConfig
	Redis     RedisConfig
	Env       string
	Port      string
	// DatasetPath points at the optional interpretation dataset shipped
	// alongside the binary. Empty or missing file means charts carry an
	// empty dataset object.
	DatasetPath string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type EphemerisConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CooldownConfig struct {
	Window time.Duration
}

type RedisConfig struct {
	URL string
}

// Load loads configuration from environment variables.
// In development it also reads a local .env file when present.
func Load() (Config, error) {
	if getEnv("KUNDLI_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:         getEnv("KUNDLI_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatasetPath: getEnv("DATASET_PATH", "dataset.json"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "kundli"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Ephemeris: EphemerisConfig{
			BaseURL: getEnv("EPHEMERIS_URL", "http://localhost:8100"),
			Timeout: time.Duration(getEnvInt("EPHEMERIS_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Cooldown: CooldownConfig{
			Window: time.Duration(getEnvInt("AI_COOLDOWN_SECONDS", 60)) * time.Second,
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
	}

	if cfg.Ephemeris.BaseURL == "" {
		return Config{}, fmt.Errorf("EPHEMERIS_URL is required")
	}

	if cfg.Cooldown.Window <= 0 {
		return Config{}, fmt.Errorf("AI_COOLDOWN_SECONDS must be positive")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
