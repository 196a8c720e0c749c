package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"spotify-mcp/config"
	"spotify-mcp/logging"
	"spotify-mcp/spotify"
)

const serverVersion = "1.0.0"

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
		logger.Fatal("failed to open token store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()

	client, err := spotify.NewClientFromStore(ctx, cfg, store, logger)
	if err != nil {
		logger.Fatal("failed to build Spotify client", zap.Error(err))
	}

	srv := newToolServer(logger.Sugar(), client, spotify.NewDeviceResolver())

	// Seed the device registry once at startup. Failure is not fatal: every
	// tool still works against the active device, and the next get_devices
	// call re-seeds the registry.
	if n, err := srv.refreshDevices(ctx); err != nil {
		logger.Warn("failed to seed device registry", zap.Error(err))
	} else {
		logger.Info("device registry seeded", zap.Int("devices", n))
	}

	mcpServer := server.NewMCPServer(
		"spotify-mcp",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
	)

	srv.registerTools(mcpServer)
	srv.registerResources(mcpServer)

	serveErr := server.ServeStdio(mcpServer)

	// The oauth2 transport may have refreshed the token while serving; write
	// it back so the next start skips a refresh round-trip.
	if token, err := client.Token(); err == nil {
		if err := store.Save(ctx, cfg.ClientID, token); err != nil {
			logger.Warn("failed to persist refreshed token", zap.Error(err))
		}
	}
	srv.resolver.Invalidate()

	if serveErr != nil {
		logger.Fatal("server error", zap.Error(serveErr))
	}
}
