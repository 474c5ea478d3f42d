package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application, read once at startup.
type Config struct {
	Port string

	// AI provider
	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Maps / directions
	MapsAPIKey  string
	KakaoAPIKey string

	// Postgres
	PostgresURL string

	// Generation loop
	GenerationMode    string // "sync" or "async"
	MaxAttempts       int
	GenerationWorkers int
	GenerationQueue   int
	GenerationTimeout time.Duration

	DirectionsCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables,
// reading a .env file first if one exists.
func LoadConfig() *Config {
	godotenv.Load()

	return &Config{
		Port: getEnvWithDefault("PORT", "8080"),

		AIProvider:   getEnvWithDefault("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", ""),

		MapsAPIKey:  os.Getenv("MAPS_API_KEY"),
		KakaoAPIKey: os.Getenv("KAKAO_API_KEY"),

		PostgresURL: os.Getenv("POSTGRES_URL"),

		GenerationMode:    getEnvWithDefault("GENERATION_MODE", "async"),
		MaxAttempts:       getEnvAsInt("GENERATION_MAX_ATTEMPTS", 2),
		GenerationWorkers: getEnvAsInt("GENERATION_WORKERS", 4),
		GenerationQueue:   getEnvAsInt("GENERATION_QUEUE_SIZE", 64),
		GenerationTimeout: time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 180)) * time.Second,

		DirectionsCacheTTL: time.Duration(getEnvAsInt("DIRECTIONS_CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
