package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/models"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SPENDTRACK_LOG_LEVEL",
		"SPENDTRACK_LOG_FORMAT",
		"SPENDTRACK_DATA_DIRECTORY",
		"SPENDTRACK_CURRENCY_DEFAULT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ".spendtrack", config.Data.Directory)
	assert.Equal(t, models.CurrencyCHF, config.DefaultCurrency())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("SPENDTRACK_LOG_LEVEL", "debug")
	t.Setenv("SPENDTRACK_LOG_FORMAT", "json")
	t.Setenv("SPENDTRACK_CURRENCY_DEFAULT", "EUR")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, models.CurrencyEUR, config.DefaultCurrency())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
data:
  directory: "/tmp/spendtrack-data"
currency:
  default: "USD"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/tmp/spendtrack-data", config.Data.Directory)
	assert.Equal(t, models.CurrencyUSD, config.DefaultCurrency())
}

func TestInitializeConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "SPENDTRACK_LOG_LEVEL", "verbose"},
		{"bad log format", "SPENDTRACK_LOG_FORMAT", "xml"},
		{"bad currency", "SPENDTRACK_CURRENCY_DEFAULT", "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnvVars(t)
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}
