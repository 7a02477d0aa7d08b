package config

import (
	"os"
	"time"
)

// Fixed upstream endpoints handed to the game client and used by the proxy.
const (
	ChutesAPIEndpoint     = "https://llm.chutes.ai/v1/chat/completions"
	OpenRouterAPIEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	GroqAPIEndpoint       = "https://api.groq.com/openai/v1/chat/completions"
	CharSnapAddEndpoint   = "https://api.charsnap.ai/v1/chats/add"
)

// Config holds all application configuration
type Config struct {
	Host        string
	Port        string
	Environment string // "production" switches logging to JSON
	LogLevel    string // debug, info, warn, error; empty picks the environment default

	// Static file serving
	StaticDir string
	IndexFile string

	// Provider API keys (empty when unset)
	ChutesAPIKey     string
	OpenRouterAPIKey string
	GroqAPIKey       string

	// CharSnap proxy
	CharSnapToken    string
	CharSnapEndpoint string
	CharSnapTimeout  time.Duration
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		StaticDir: getEnv("STATIC_DIR", "."),
		IndexFile: getEnv("INDEX_FILE", "index.html"),

		ChutesAPIKey:     os.Getenv("CHUTES_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),

		CharSnapToken:    os.Getenv("CHARSNAP_API_TOKEN"),
		CharSnapEndpoint: getEnv("CHARSNAP_ENDPOINT", CharSnapAddEndpoint),
		CharSnapTimeout:  getDurationEnv("CHARSNAP_TIMEOUT", 30*time.Second),
	}
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
