package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Keys APIKeys
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	Provider      string // "gemini" or "ollama"
	Model         string // e.g. "gemini-2.0-flash"
	OllamaBaseURL string

	// Cost optimization knobs
	RateLimitDelay time.Duration // minimum spacing between live calls
	MaxCacheSize   int           // per-session response cache capacity
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "gemini"),
			Model:          getEnv("MODEL_NAME", "gemini-2.0-flash"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RateLimitDelay: time.Duration(getEnvAsInt("RATE_LIMIT_DELAY", 2)) * time.Second,
			MaxCacheSize:   getEnvAsInt("MAX_CACHE_SIZE", 100),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
