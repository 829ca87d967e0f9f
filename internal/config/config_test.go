package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validProductionConfig() *Config {
	return &Config{
		Port:       "8480",
		JWTSecret:  "0123456789abcdef0123456789abcdef-production",
		DBPassword: "a-strong-database-password",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid Production", func(t *testing.T) {
		require.NoError(t, validProductionConfig().Validate())
	})

	t.Run("Missing Port", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing JWT Secret", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Default JWT Secret In Production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Short JWT Secret In Production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "too-short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Weak DB Password In Production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("SSL Disabled In Production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.DBSSLMode = "disable"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Dev Bootstrap In Production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.DevBootstrapRoot = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("Development Tolerates Defaults", func(t *testing.T) {
		cfg := &Config{
			Port:      "8480",
			JWTSecret: "your-secret-key-change-in-production",
			Env:       "development",
		}
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Setenv("APP_ENV", "development")

	dir := t.TempDir()
	raw, err := yaml.Marshal(map[string]any{
		"PORT":       "9000",
		"DB_NAME":    "atelier_file",
		"JWT_SECRET": "from-file-0123456789abcdef0123456789",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), raw, 0o600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "atelier_file", cfg.DBName)
	assert.Equal(t, "from-file-0123456789abcdef0123456789", cfg.JWTSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("APP_ENV", "development")

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8480", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "atelier", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.False(t, cfg.DevBootstrapRoot)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExporter)
	assert.InDelta(t, 1.0, cfg.TracingSampler, 0.001)
}
