package common

import (
	"os"
	"strconv"
)

// Config holds all process-level configuration. Extraction thresholds
// live on the extractor itself; this only covers the binaries.
type Config struct {
	Server ServerConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr      string
	ReferenceYear int // overrides the month/day-only reference year; 0 = current year
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:      getEnv("GRPC_ADDR", ":8080"),
			ReferenceYear: getEnvAsInt("REFERENCE_YEAR", 0),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
