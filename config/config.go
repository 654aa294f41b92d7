package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Storage StorageConfig
	App     AppConfig
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	AITimeout      time.Duration
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64
}

type StorageConfig struct {
	// Backend selects where session state is persisted: "file", "redis" or "memory".
	Backend   string
	FilePath  string
	RedisAddr string
	RedisDB   int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ThemeMode   string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnv("QUICKBIRD_API_URL", "http://localhost:8000"),
			RequestTimeout: getEnvAsDuration("QUICKBIRD_REQUEST_TIMEOUT", 30*time.Second),
			UploadTimeout:  getEnvAsDuration("QUICKBIRD_UPLOAD_TIMEOUT", 90*time.Second),
			AITimeout:      getEnvAsDuration("QUICKBIRD_AI_TIMEOUT", 3*time.Minute),
			RateLimit:      getEnvAsFloat("QUICKBIRD_RATE_LIMIT", 0),
		},
		Storage: StorageConfig{
			Backend:   getEnv("QUICKBIRD_STORAGE", "file"),
			FilePath:  getEnv("QUICKBIRD_STORAGE_PATH", defaultStoragePath()),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
			RedisDB:   getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ThemeMode:   getEnv("QUICKBIRD_THEME", "light"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("QUICKBIRD_API_URL is required")
	}

	switch c.Storage.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("QUICKBIRD_STORAGE must be file, redis or memory, got %q", c.Storage.Backend)
	}

	if c.Storage.Backend == "file" && c.Storage.FilePath == "" {
		return fmt.Errorf("QUICKBIRD_STORAGE_PATH is required for file storage")
	}

	return nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quickbird/session.json"
	}
	return home + "/.quickbird/session.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
