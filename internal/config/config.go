package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Voice is the default voice used when provisioning a Vapi assistant.
type Voice struct {
	Provider string
	VoiceID  string
}

// Model is the default LLM configuration injected into new assistants.
type Model struct {
	Provider    string
	Model       string
	Temperature float64
}

// Config holds all configuration for the application. Credentials are
// read once at startup; absence is advisory here and becomes a hard
// failure only when the owning client is constructed.
type Config struct {
	Port string
	Env  string

	GeminiAPIKey string
	VapiAPIKey   string

	DefaultVoice Voice
	DefaultModel Model
}

// Load reads configuration from environment variables.
// In development, it loads from a .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		VapiAPIKey:   os.Getenv("VAPI_API_KEY"),
		DefaultVoice: Voice{
			Provider: getEnv("DEFAULT_VOICE_PROVIDER", "11labs"),
			VoiceID:  getEnv("DEFAULT_VOICE_ID", "pNInz6obpgDQGcFmaJgB"),
		},
		DefaultModel: Model{
			Provider:    getEnv("DEFAULT_MODEL_PROVIDER", "openai"),
			Model:       getEnv("DEFAULT_MODEL", "gpt-4"),
			Temperature: getEnvFloat("DEFAULT_MODEL_TEMPERATURE", 0.7),
		},
	}
}

// Validate reports whether both upstream credentials are present. It
// logs a warning per missing key and never fails; callers that skip it
// simply fail later at client construction.
func (c *Config) Validate() bool {
	ok := true
	if c.GeminiAPIKey == "" {
		slog.Warn("missing API key", "name", "GEMINI_API_KEY")
		ok = false
	}
	if c.VapiAPIKey == "" {
		slog.Warn("missing API key", "name", "VAPI_API_KEY")
		ok = false
	}
	return ok
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
