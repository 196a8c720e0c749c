package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"spotify-mcp/spotify/model"
)

// jsonResult marshals v into an indented text result, the shape agents
// consume best.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *toolServer) handleGetCurrentPlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	market := request.GetString("market", "")

	state, err := s.spotify.CurrentPlayback(ctx, market)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get playback state: %v", err)), nil
	}
	if state == nil {
		return mcp.NewToolResultText("Nothing is playing right now."), nil
	}
	return jsonResult(state)
}

func (s *toolServer) handleGetDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.spotify.Devices(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list devices: %v", err)), nil
	}

	// A fresh listing is the refresh point for the name registry.
	for _, d := range devices {
		s.resolver.Set(d.Name, d.ID)
	}
	s.log.Debugw("device registry refreshed", "devices", len(devices))

	return jsonResult(model.DevicesResponse{Devices: devices})
}

func (s *toolServer) handleStartPlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := s.resolveDevice(request.GetString("device_name", ""))
	contextURI := request.GetString("context_uri", "")
	uris := request.GetStringSlice("uris", nil)
	positionMs := request.GetInt("position_ms", 0)

	if err := s.spotify.StartPlayback(ctx, deviceID, contextURI, uris, positionMs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start playback: %v", err)), nil
	}
	return jsonResult(model.Success("Playback started"))
}

func (s *toolServer) handlePausePlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.PausePlayback(ctx, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to pause playback: %v", err)), nil
	}
	return jsonResult(model.Success("Playback paused"))
}

func (s *toolServer) handleSkipToNext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.SkipToNext(ctx, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to skip to next track: %v", err)), nil
	}
	return jsonResult(model.Success("Skipped to next track"))
}

func (s *toolServer) handleSkipToPrevious(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.SkipToPrevious(ctx, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to skip to previous track: %v", err)), nil
	}
	return jsonResult(model.Success("Skipped to previous track"))
}

func (s *toolServer) handleSetShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := request.RequireBool("state")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid state parameter: %v", err)), nil
	}
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.SetShuffle(ctx, state, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set shuffle: %v", err)), nil
	}
	if state {
		return jsonResult(model.Success("Shuffle enabled"))
	}
	return jsonResult(model.Success("Shuffle disabled"))
}

func (s *toolServer) handleAddToQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := request.RequireString("uri")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid uri parameter: %v", err)), nil
	}
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.AddToQueue(ctx, uri, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add to queue: %v", err)), nil
	}
	return jsonResult(model.Success(fmt.Sprintf("Added %s to queue", uri)))
}

func (s *toolServer) handleSetVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	percent, err := request.RequireInt("volume_percent")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid volume_percent parameter: %v", err)), nil
	}
	if percent < 0 || percent > 100 {
		return mcp.NewToolResultError("volume_percent must be between 0 and 100"), nil
	}
	deviceID := s.resolveDevice(request.GetString("device_name", ""))

	if err := s.spotify.SetVolume(ctx, percent, deviceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set volume: %v", err)), nil
	}
	return jsonResult(model.Success(fmt.Sprintf("Volume set to %d%%", percent)))
}

func (s *toolServer) handleTransferPlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceName, err := request.RequireString("device_name")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid device_name parameter: %v", err)), nil
	}
	forcePlay := request.GetBool("force_play", true)

	// An unresolved name is answered, not raised: the agent reads the
	// acknowledgment and can list devices to recover.
	deviceID, ok := s.resolver.Resolve(deviceName)
	if !ok {
		s.log.Infow("transfer target not in device registry", "device_name", deviceName)
		return jsonResult(model.Success(fmt.Sprintf("Device '%s' not found", deviceName)))
	}

	if err := s.spotify.TransferPlayback(ctx, deviceID, forcePlay); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to transfer playback: %v", err)), nil
	}
	return jsonResult(model.Success(fmt.Sprintf("Playback transferred to device %s", deviceName)))
}

func (s *toolServer) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid query parameter: %v", err)), nil
	}
	types := request.GetString("type", "track")
	limit := request.GetInt("limit", 10)
	market := request.GetString("market", "")

	results, err := s.spotify.Search(ctx, query, types, limit, market)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Search failed: %v", err)), nil
	}
	return jsonResult(results)
}

func (s *toolServer) handleGetSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	offset := request.GetInt("offset", 0)
	market := request.GetString("market", "")

	page, err := s.spotify.SavedTracks(ctx, limit, offset, market)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get saved tracks: %v", err)), nil
	}
	return jsonResult(page)
}

func (s *toolServer) handleCheckSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := request.GetStringSlice("track_ids", nil)
	if len(ids) == 0 {
		return mcp.NewToolResultError("track_ids must be a non-empty list"), nil
	}

	saved, err := s.spotify.CheckSavedTracks(ctx, ids)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to check saved tracks: %v", err)), nil
	}
	return jsonResult(model.CheckSavedTracksResponse{Tracks: ids, Saved: saved})
}

func (s *toolServer) handleSaveTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := request.GetStringSlice("track_ids", nil)
	if len(ids) == 0 {
		return mcp.NewToolResultError("track_ids must be a non-empty list"), nil
	}

	if err := s.spotify.SaveTracks(ctx, ids); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save tracks: %v", err)), nil
	}
	return jsonResult(model.Success(fmt.Sprintf("Saved %d track(s)", len(ids))))
}

func (s *toolServer) handleRemoveSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := request.GetStringSlice("track_ids", nil)
	if len(ids) == 0 {
		return mcp.NewToolResultError("track_ids must be a non-empty list"), nil
	}

	if err := s.spotify.RemoveSavedTracks(ctx, ids); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to remove tracks: %v", err)), nil
	}
	return jsonResult(model.Success(fmt.Sprintf("Removed %d track(s)", len(ids))))
}

func (s *toolServer) handleGetTopTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	offset := request.GetInt("offset", 0)
	timeRange := request.GetString("time_range", "medium_term")

	page, err := s.spotify.TopTracks(ctx, limit, offset, timeRange)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get top tracks: %v", err)), nil
	}
	return jsonResult(page)
}

func (s *toolServer) handleGetRecentlyPlayed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	after := request.GetInt("after", 0)
	before := request.GetInt("before", 0)

	page, err := s.spotify.RecentlyPlayed(ctx, limit, int64(after), int64(before))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get recently played tracks: %v", err)), nil
	}
	return jsonResult(page)
}

func (s *toolServer) handleCreatePlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid name parameter: %v", err)), nil
	}
	userID := request.GetString("user_id", "")
	description := request.GetString("description", "")
	public := request.GetBool("public", true)
	collaborative := request.GetBool("collaborative", false)

	if userID == "" {
		userID, err = s.spotify.CurrentUserID(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve current user: %v", err)), nil
		}
	}

	playlist, err := s.spotify.CreatePlaylist(ctx, userID, name, description, public, collaborative)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create playlist: %v", err)), nil
	}
	return jsonResult(playlist)
}

func (s *toolServer) handleGetEpisode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	episodeID, err := request.RequireString("episode_id")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid episode_id parameter: %v", err)), nil
	}
	market := request.GetString("market", "")

	episode, err := s.spotify.Episode(ctx, episodeID, market)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get episode: %v", err)), nil
	}
	return jsonResult(episode)
}

func (s *toolServer) handleGetShowEpisodes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	showID, err := request.RequireString("show_id")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid show_id parameter: %v", err)), nil
	}
	limit := request.GetInt("limit", 20)
	offset := request.GetInt("offset", 0)
	market := request.GetString("market", "")

	page, err := s.spotify.ShowEpisodes(ctx, showID, limit, offset, market)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get show episodes: %v", err)), nil
	}
	return jsonResult(page)
}
