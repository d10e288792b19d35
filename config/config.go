package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTExpiresIn       time.Duration
	SeedSecret         string
	DataEncryptionKey  string
	FrontendURL        string
	ExportDir          string
	RateLimitPerMinute int
	GinMode            string
	Environment        string
	LogLevel           string
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SeedSecret:        os.Getenv("SEED_SECRET"),
		DataEncryptionKey: os.Getenv("DATA_ENCRYPTION_KEY"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		ExportDir:         getEnv("EXPORT_DIR", filepath.Join(os.TempDir(), "travel-management-exports")),
		GinMode:           getEnv("GIN_MODE", "debug"),
		Environment:       getEnv("ENVIRONMENT", os.Getenv("ENV")),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.DataEncryptionKey != "" && len(cfg.DataEncryptionKey) != 32 {
		return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must be exactly 32 characters")
	}

	expires, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "24h"))
	if err != nil || expires <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %q", os.Getenv("JWT_EXPIRES_IN"))
	}
	cfg.JWTExpiresIn = expires

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %q", os.Getenv("RATE_LIMIT_PER_MINUTE"))
	}
	cfg.RateLimitPerMinute = limit

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode or the deployment
// environment is production.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release" || c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
