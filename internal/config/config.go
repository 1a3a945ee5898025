package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	ServerPort      string
	Environment     string
	LogLevel        zerolog.Level
	SeedData        bool
	ShutdownTimeout time.Duration
}

// IsDevelopment reports whether detailed error pages should be shown.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	env := os.Getenv("APP_ENV")
	switch env {
	case "":
		env = EnvProduction
	case EnvDevelopment, EnvProduction:
	default:
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, env)
	}

	logLevel := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		logLevel = lvl
	}

	seedData := true
	if v := os.Getenv("SEED_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DATA: %w", err)
		}
		seedData = b
	}

	shutdownTimeout := 5 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		shutdownTimeout = d
	}

	return &Config{
		ServerPort:      serverPort,
		Environment:     env,
		LogLevel:        logLevel,
		SeedData:        seedData,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
