package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment. Flags override
// these values at the command layer.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	ChromePath   string
	Port         string
	OutputDir    string
}

// Load reads .env if present, then the process environment. Missing
// keys are not an error here; the commands that need them complain at
// the point of use.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-flash-lite-latest"),
		ChromePath:   os.Getenv("CHROME_PATH"),
		Port:         getEnv("PORT", "3000"),
		OutputDir:    getEnv("OUTPUT_DIR", "."),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
