package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"spotify-mcp/spotify/model"
)

// registerResources exposes the read models as MCP resources for clients
// that prefer reads over tool calls.
func (s *toolServer) registerResources(mcpServer *server.MCPServer) {
	devicesResource := mcp.NewResource(
		"spotify://devices",
		"Spotify Connect Devices",
		mcp.WithResourceDescription("The user's available Spotify Connect devices"),
		mcp.WithMIMEType("application/json"),
	)

	playbackResource := mcp.NewResource(
		"spotify://playback",
		"Current Playback State",
		mcp.WithResourceDescription("The current Spotify playback state"),
		mcp.WithMIMEType("application/json"),
	)

	mcpServer.AddResource(devicesResource, s.devicesResourceHandler)
	mcpServer.AddResource(playbackResource, s.playbackResourceHandler)
}

func (s *toolServer) devicesResourceHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	devices, err := s.spotify.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	for _, d := range devices {
		s.resolver.Set(d.Name, d.ID)
	}

	data, err := json.MarshalIndent(model.DevicesResponse{Devices: devices}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal devices: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *toolServer) playbackResourceHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	state, err := s.spotify.CurrentPlayback(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get playback state: %w", err)
	}

	text := "null"
	if state != nil {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal playback state: %w", err)
		}
		text = string(data)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
