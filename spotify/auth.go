package spotify

import (
	"context"

	spot "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"

	"spotify-mcp/config"
)

// userScopes is everything the tool surface needs: playback read/write,
// library read/write, top tracks, listening history and playlist creation.
var userScopes = []string{
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserModifyPlaybackState,
	spotifyauth.ScopeUserLibraryRead,
	spotifyauth.ScopeUserLibraryModify,
	spotifyauth.ScopeUserTopRead,
	spotifyauth.ScopeUserReadRecentlyPlayed,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopePlaylistModifyPrivate,
}

// NewAuthenticator builds the OAuth authenticator from configuration.
func NewAuthenticator(cfg config.Config) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.RedirectURI),
		spotifyauth.WithScopes(userScopes...),
	)
}

// NewClientFromStore builds the shared client from the token persisted by the
// authorize command. One client serves the whole process lifetime; the oauth2
// transport refreshes the token in place as needed.
func NewClientFromStore(ctx context.Context, cfg config.Config, store *TokenStore, log *zap.Logger) (*Client, error) {
	token, err := store.Load(ctx, cfg.ClientID)
	if err != nil {
		return nil, err
	}

	auth := NewAuthenticator(cfg)
	httpClient := auth.Client(ctx, token)

	return NewClient(spot.New(httpClient), log), nil
}
