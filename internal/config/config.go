package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host string
	Port string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// YouTube Data API
	YouTubeAPIKey string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Host:          getEnvOrDefault("HOST", "0.0.0.0"),
		Port:          getEnvOrDefault("PORT", "8000"),
		GeminiAPIKey:  getEnvAny("GOOGLE_GEMINI_KEY", "GOOGLE_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvAny returns the value of the first key that is set and non-empty.
func getEnvAny(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}
