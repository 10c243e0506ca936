package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"spendtrack/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() {
	once.Do(func() {
		logger := logging.GetLogger()

		// Try to find .env file in current directory
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			// Try to find .env in parent directory (project root)
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				logger.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return
		}
		logger.WithField(logging.FieldFile, envFile).Debug("Loaded environment variables")
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
