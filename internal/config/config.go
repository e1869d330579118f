// Package config reads service configuration from the environment.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads at startup.
type Config struct {
	GroqAPIKey string
	GroqURL    string
	Model      string
	DocPath    string
	Port       string
}

const (
	defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
	defaultDocPath = "flask_documentation.docx"
	defaultPort    = "8080"
)

// Load reads configuration from the environment, loading .env first if one
// exists. The Groq API key is required; everything else has a default.
func Load() (Config, error) {
	_ = godotenv.Load()

	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return Config{}, errors.New("GROQ_API_KEY environment variable is not set")
	}
	return Config{
		GroqAPIKey: key,
		GroqURL:    envOrDefault("GROQ_URL", defaultGroqURL),
		Model:      envOrDefault("GROQ_MODEL", defaultModel),
		DocPath:    envOrDefault("DOCX_PATH", defaultDocPath),
		Port:       envOrDefault("PORT", defaultPort),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
