package spotify

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	_ "modernc.org/sqlite"
)

const tokenSchema = `
CREATE TABLE IF NOT EXISTS oauth_tokens (
    client_id     TEXT PRIMARY KEY,
    access_token  TEXT NOT NULL,
    refresh_token TEXT NOT NULL,
    token_type    TEXT NOT NULL,
    expiry        INTEGER NOT NULL,
    updated_at    INTEGER NOT NULL
);`

// TokenStore persists OAuth tokens in SQLite so the server can start without
// an interactive login. One row per client id; the authorize command writes
// the first token and the server rewrites it at shutdown after refreshes.
type TokenStore struct {
	db *sql.DB
}

// NewTokenStore opens (and if necessary creates) the token database at path.
// A leading ~/ is expanded to the user's home directory.
func NewTokenStore(path string) (*TokenStore, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping token database: %w", err)
	}

	if _, err := db.Exec(tokenSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token schema: %w", err)
	}

	return &TokenStore{db: db}, nil
}

// Save writes or replaces the token for clientID.
func (s *TokenStore) Save(ctx context.Context, clientID string, token *oauth2.Token) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO oauth_tokens (client_id, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at`,
		clientID, token.AccessToken, token.RefreshToken, token.TokenType,
		token.Expiry.Unix(), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load returns the token stored for clientID, or ErrNoToken when the client
// has never authorized.
func (s *TokenStore) Load(ctx context.Context, clientID string) (*oauth2.Token, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, token_type, expiry
		FROM oauth_tokens WHERE client_id = ?`, clientID)

	var accessToken, refreshToken, tokenType string
	var expiry int64
	if err := row.Scan(&accessToken, &refreshToken, &tokenType, &expiry); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	return &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenType,
		Expiry:       time.Unix(expiry, 0),
	}, nil
}

// Close closes the underlying database.
func (s *TokenStore) Close() error {
	return s.db.Close()
}
