package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the duration of the test. t.Setenv alone
// leaves the variable present, which envconfig treats as set.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "id-123")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret-456")
	unsetenv(t, "SPOTIFY_REDIRECT_URI")
	unsetenv(t, "SPOTIFY_TOKEN_DB_PATH")
	unsetenv(t, "SPOTIFY_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "id-123", cfg.ClientID)
	assert.Equal(t, "secret-456", cfg.ClientSecret)
	assert.Equal(t, "http://127.0.0.1:8888/callback", cfg.RedirectURI)
	assert.Equal(t, "~/.spotify-mcp/tokens.db", cfg.TokenDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "id-123")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret-456")
	t.Setenv("SPOTIFY_REDIRECT_URI", "http://localhost:9000/cb")
	t.Setenv("SPOTIFY_TOKEN_DB_PATH", "/tmp/tokens.db")
	t.Setenv("SPOTIFY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/cb", cfg.RedirectURI)
	assert.Equal(t, "/tmp/tokens.db", cfg.TokenDBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingCredentials(t *testing.T) {
	unsetenv(t, "SPOTIFY_CLIENT_ID")
	unsetenv(t, "SPOTIFY_CLIENT_SECRET")

	_, err := Load()
	assert.Error(t, err)
}
