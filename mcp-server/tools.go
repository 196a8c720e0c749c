package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools declares one tool per Spotify capability and binds it to its
// handler. Parameter names and defaults mirror the upstream Web API.
func (s *toolServer) registerTools(mcpServer *server.MCPServer) {
	playbackTool := mcp.NewTool("get_current_playback",
		mcp.WithDescription("Get the current Spotify playback state: track, device, progress and shuffle mode."),
		mcp.WithString("market",
			mcp.Description("Optional ISO 3166-1 alpha-2 country code, e.g. 'US'."),
		),
	)

	devicesTool := mcp.NewTool("get_devices",
		mcp.WithDescription("List the user's available Spotify Connect devices. Also refreshes the device name registry used by the other tools."),
	)

	startTool := mcp.NewTool("start_playback",
		mcp.WithDescription("Start or resume playback. With no arguments, resumes on the active device."),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices. Unknown names fall back to the active device."),
		),
		mcp.WithString("context_uri",
			mcp.Description("Optional Spotify context URI to play (album, artist or playlist)."),
		),
		mcp.WithArray("uris",
			mcp.Description("Optional list of Spotify track URIs to play."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("position_ms",
			mcp.Description("Optional position in milliseconds to start playback from."),
		),
	)

	pauseTool := mcp.NewTool("pause_playback",
		mcp.WithDescription("Pause playback."),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	nextTool := mcp.NewTool("skip_to_next",
		mcp.WithDescription("Skip to the next track in the queue."),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	previousTool := mcp.NewTool("skip_to_previous",
		mcp.WithDescription("Skip back to the previous track."),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	shuffleTool := mcp.NewTool("set_shuffle",
		mcp.WithDescription("Turn shuffle mode on or off."),
		mcp.WithBoolean("state",
			mcp.Required(),
			mcp.Description("true to enable shuffle, false to disable."),
		),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	queueTool := mcp.NewTool("add_to_queue",
		mcp.WithDescription("Add a track to the end of the playback queue."),
		mcp.WithString("uri",
			mcp.Required(),
			mcp.Description("Track URI, ID or open.spotify.com URL."),
		),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	volumeTool := mcp.NewTool("set_volume",
		mcp.WithDescription("Set the playback volume."),
		mcp.WithNumber("volume_percent",
			mcp.Required(),
			mcp.Description("Volume between 0 and 100."),
		),
		mcp.WithString("device_name",
			mcp.Description("Optional device name from get_devices."),
		),
	)

	transferTool := mcp.NewTool("transfer_playback",
		mcp.WithDescription("Transfer playback to a named device."),
		mcp.WithString("device_name",
			mcp.Required(),
			mcp.Description("Device name from get_devices. Matching is case-insensitive."),
		),
		mcp.WithBoolean("force_play",
			mcp.Description("Whether to start playing after the transfer. Defaults to true."),
		),
	)

	searchTool := mcp.NewTool("search_spotify",
		mcp.WithDescription("Search the Spotify catalog for tracks, albums or artists."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query."),
		),
		mcp.WithString("type",
			mcp.Description("Comma-separated item types: track, album, artist. Defaults to track."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results per type, 1-50. Defaults to 10."),
		),
		mcp.WithString("market",
			mcp.Description("Optional ISO 3166-1 alpha-2 country code."),
		),
	)

	savedTracksTool := mcp.NewTool("get_saved_tracks",
		mcp.WithDescription("List tracks saved in the user's library."),
		mcp.WithNumber("limit",
			mcp.Description("Number of tracks to return, max 50. Defaults to 20."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Index of the first track to return. Defaults to 0."),
		),
		mcp.WithString("market",
			mcp.Description("Optional ISO 3166-1 alpha-2 country code."),
		),
	)

	checkSavedTool := mcp.NewTool("check_saved_tracks",
		mcp.WithDescription("Check whether tracks are saved in the user's library."),
		mcp.WithArray("track_ids",
			mcp.Required(),
			mcp.Description("Track IDs, URIs or URLs to check."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	saveTracksTool := mcp.NewTool("save_tracks",
		mcp.WithDescription("Save tracks to the user's library."),
		mcp.WithArray("track_ids",
			mcp.Required(),
			mcp.Description("Track IDs, URIs or URLs to save."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	removeTracksTool := mcp.NewTool("remove_saved_tracks",
		mcp.WithDescription("Remove tracks from the user's library."),
		mcp.WithArray("track_ids",
			mcp.Required(),
			mcp.Description("Track IDs, URIs or URLs to remove."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	topTracksTool := mcp.NewTool("get_top_tracks",
		mcp.WithDescription("Get the user's top tracks."),
		mcp.WithNumber("limit",
			mcp.Description("Number of tracks to return. Defaults to 20."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Index of the first track to return. Defaults to 0."),
		),
		mcp.WithString("time_range",
			mcp.Description("One of short_term, medium_term, long_term. Defaults to medium_term."),
		),
	)

	recentTool := mcp.NewTool("get_recently_played",
		mcp.WithDescription("Get the user's recently played tracks."),
		mcp.WithNumber("limit",
			mcp.Description("Number of items to return. Defaults to 20."),
		),
		mcp.WithNumber("after",
			mcp.Description("Optional unix timestamp in milliseconds; return items played after it."),
		),
		mcp.WithNumber("before",
			mcp.Description("Optional unix timestamp in milliseconds; return items played before it."),
		),
	)

	createPlaylistTool := mcp.NewTool("create_playlist",
		mcp.WithDescription("Create a playlist."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Playlist name."),
		),
		mcp.WithString("user_id",
			mcp.Description("Owner user ID. Defaults to the authenticated user."),
		),
		mcp.WithString("description",
			mcp.Description("Playlist description."),
		),
		mcp.WithBoolean("public",
			mcp.Description("Whether the playlist is public. Defaults to true."),
		),
		mcp.WithBoolean("collaborative",
			mcp.Description("Whether the playlist is collaborative. Defaults to false."),
		),
	)

	episodeTool := mcp.NewTool("get_episode",
		mcp.WithDescription("Get a single podcast episode."),
		mcp.WithString("episode_id",
			mcp.Required(),
			mcp.Description("Episode ID, URI or URL."),
		),
		mcp.WithString("market",
			mcp.Description("Optional ISO 3166-1 alpha-2 country code."),
		),
	)

	showEpisodesTool := mcp.NewTool("get_show_episodes",
		mcp.WithDescription("List a show's episodes."),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Show ID, URI or URL."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of episodes to return. Defaults to 20."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Index of the first episode to return. Defaults to 0."),
		),
		mcp.WithString("market",
			mcp.Description("Optional ISO 3166-1 alpha-2 country code."),
		),
	)

	mcpServer.AddTool(playbackTool, s.handleGetCurrentPlayback)
	mcpServer.AddTool(devicesTool, s.handleGetDevices)
	mcpServer.AddTool(startTool, s.handleStartPlayback)
	mcpServer.AddTool(pauseTool, s.handlePausePlayback)
	mcpServer.AddTool(nextTool, s.handleSkipToNext)
	mcpServer.AddTool(previousTool, s.handleSkipToPrevious)
	mcpServer.AddTool(shuffleTool, s.handleSetShuffle)
	mcpServer.AddTool(queueTool, s.handleAddToQueue)
	mcpServer.AddTool(volumeTool, s.handleSetVolume)
	mcpServer.AddTool(transferTool, s.handleTransferPlayback)
	mcpServer.AddTool(searchTool, s.handleSearch)
	mcpServer.AddTool(savedTracksTool, s.handleGetSavedTracks)
	mcpServer.AddTool(checkSavedTool, s.handleCheckSavedTracks)
	mcpServer.AddTool(saveTracksTool, s.handleSaveTracks)
	mcpServer.AddTool(removeTracksTool, s.handleRemoveSavedTracks)
	mcpServer.AddTool(topTracksTool, s.handleGetTopTracks)
	mcpServer.AddTool(recentTool, s.handleGetRecentlyPlayed)
	mcpServer.AddTool(createPlaylistTool, s.handleCreatePlaylist)
	mcpServer.AddTool(episodeTool, s.handleGetEpisode)
	mcpServer.AddTool(showEpisodesTool, s.handleGetShowEpisodes)
}
