package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	AppName         string
	Debug           bool
	CORSAllowOrigin []string
	MongoURI        string
	MongoDB         string
	OpenAIToken     string
	OpenAIModel     string
	GeminiToken     string
	GeminiModel     string
}

// Load reads configuration from environment variables with sensible defaults.
// MONGODB_URI is the only required setting; startup fails without it.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	mongoURI := os.Getenv("MONGODB_URI")
	if strings.TrimSpace(mongoURI) == "" {
		return Config{}, fmt.Errorf("MONGODB_URI environment variable is missing")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		AppName:         getEnv("APP_NAME", "PathoAi API"),
		Debug:           getEnv("DEBUG", "False") == "True",
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		MongoURI:        mongoURI,
		MongoDB:         getEnv("MONGODB_DB", "pathoai"),
		OpenAIToken:     getEnv("OPENAI_TOKEN", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiToken:     getEnv("GEMINI_TOKEN", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
	}, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
