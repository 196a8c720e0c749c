package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
// All variables carry the SPOTIFY_ prefix, e.g. SPOTIFY_CLIENT_ID.
type Config struct {
	ClientID     string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"CLIENT_SECRET" required:"true"`
	RedirectURI  string `envconfig:"REDIRECT_URI" default:"http://127.0.0.1:8888/callback"`
	TokenDBPath  string `envconfig:"TOKEN_DB_PATH" default:"~/.spotify-mcp/tokens.db"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the process environment.
// Missing credentials are an error; everything else has a default.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("spotify", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
