package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://localhost:8000", cfg.ServiceURL)
	assert.Equal(t, int64(64<<10), cfg.MaxBodyBytes)
	assert.Equal(t, 20*time.Second, cfg.ClientTimeout)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
log_level: DEBUG
font_path: /fonts/DejaVuSans-Bold.ttf
allowed_origins:
  - https://a.example.com
read_timeout: 5s
`), 0o600))
	t.Setenv("PORT", "9100")
	t.Setenv("ALLOWED_ORIGINS", "https://b.example.com, https://c.example.com,")
	t.Setenv("CLIENT_TIMEOUT", "3s")

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "/fonts/DejaVuSans-Bold.ttf", cfg.FontPath)
	assert.Equal(t, []string{"https://b.example.com", "https://c.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.ClientTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [oops"), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "soon")

	_, err := LoadConfig("")

	assert.Error(t, err)
}
