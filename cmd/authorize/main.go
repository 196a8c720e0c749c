// Command authorize runs the one-time OAuth flow: it opens a loopback
// listener on the configured redirect URI, prints the consent URL, exchanges
// the callback code for a token and saves it to the token store. After that
// the MCP server starts without any interaction.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	spot "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	"spotify-mcp/config"
	"spotify-mcp/spotify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid redirect URI %q: %v\n", cfg.RedirectURI, err)
		os.Exit(1)
	}

	store, err := spotify.NewTokenStore(cfg.TokenDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open token store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	auth := spotify.NewAuthenticator(cfg)
	state := uuid.NewString()

	tokenCh := make(chan *oauth2.Token, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.Token(r.Context(), state, r)
		if err != nil {
			http.Error(w, "Token exchange failed", http.StatusForbidden)
			errCh <- fmt.Errorf("token exchange failed: %w", err)
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this window.")
		tokenCh <- token
	})

	srv := &http.Server{Addr: redirect.Host, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	fmt.Println("Open the following URL in your browser to authorize Spotify access:")
	fmt.Println()
	fmt.Println("  " + auth.AuthURL(state))
	fmt.Println()

	var token *oauth2.Token
	select {
	case token = <-tokenCh:
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "Authorization failed: %v\n", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)

	ctx := context.Background()
	if err := store.Save(ctx, cfg.ClientID, token); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save token: %v\n", err)
		os.Exit(1)
	}

	client := spot.New(auth.Client(ctx, token))
	if user, err := client.CurrentUser(ctx); err == nil {
		fmt.Printf("Authorized as %s (%s)\n", user.DisplayName, user.ID)
	} else {
		fmt.Println("Authorized. Token saved.")
	}
	fmt.Printf("Token stored in %s\n", cfg.TokenDBPath)
}
