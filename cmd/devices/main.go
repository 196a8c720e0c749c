// Command devices is a small direct driver around the client facade: it
// prints the user's Spotify Connect devices, top tracks and saved-track
// count without going through the MCP transport. Handy for checking that
// credentials and the stored token work.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"spotify-mcp/config"
	"spotify-mcp/logging"
	"spotify-mcp/spotify"
	"spotify-mcp/spotify/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := spotify.NewTokenStore(cfg.TokenDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open token store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	client, err := spotify.NewClientFromStore(ctx, cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build Spotify client: %v\n", err)
		os.Exit(1)
	}

	devices, err := client.Devices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list devices: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Devices (%d):\n", len(devices))
	for _, d := range devices {
		active := ""
		if d.IsActive {
			active = " (active)"
		}
		fmt.Printf("  %s - %s [%s] volume %d%%%s\n", d.Name, d.ID, d.Type, d.VolumePercent, active)
	}

	top, err := client.TopTracks(ctx, 10, 0, "medium_term")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get top tracks: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nTop tracks:")
	for i, track := range top.Items {
		fmt.Printf("  %d. %s - %s\n", i+1, artistNames(track), track.Name)
	}

	saved, err := client.SavedTracks(ctx, 5, 0, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get saved tracks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSaved tracks: %d total\n", saved.Total)
	for _, item := range saved.Items {
		fmt.Printf("  added %s: %s\n", item.AddedAt, item.Track.Name)
	}
}

func artistNames(track model.Track) string {
	names := make([]string, len(track.Artists))
	for i, a := range track.Artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
