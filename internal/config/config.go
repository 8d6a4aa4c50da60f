package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Session SessionConfig
	Retry   RetryConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "1m"),
		},
		Retry: RetryConfig{
			MaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "2s"),
		},
	}

	// The Gemini credential is resolved once at startup. A missing key is
	// not recoverable at request time, so fail here.
	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
