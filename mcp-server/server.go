package main

import (
	"context"

	"go.uber.org/zap"

	"spotify-mcp/spotify"
	"spotify-mcp/spotify/model"
)

// spotifyAPI is the set of upstream operations the tool handlers call.
// *spotify.Client implements it; tests substitute a fake.
type spotifyAPI interface {
	CurrentUserID(ctx context.Context) (string, error)
	CurrentPlayback(ctx context.Context, market string) (*model.PlaybackState, error)
	Devices(ctx context.Context) ([]model.Device, error)
	StartPlayback(ctx context.Context, deviceID, contextURI string, uris []string, positionMs int) error
	PausePlayback(ctx context.Context, deviceID string) error
	SkipToNext(ctx context.Context, deviceID string) error
	SkipToPrevious(ctx context.Context, deviceID string) error
	SetShuffle(ctx context.Context, state bool, deviceID string) error
	AddToQueue(ctx context.Context, uri, deviceID string) error
	SetVolume(ctx context.Context, percent int, deviceID string) error
	TransferPlayback(ctx context.Context, deviceID string, play bool) error
	Search(ctx context.Context, query, types string, limit int, market string) (*model.SearchResponse, error)
	SavedTracks(ctx context.Context, limit, offset int, market string) (*model.SavedTracksPage, error)
	CheckSavedTracks(ctx context.Context, ids []string) ([]bool, error)
	SaveTracks(ctx context.Context, ids []string) error
	RemoveSavedTracks(ctx context.Context, ids []string) error
	TopTracks(ctx context.Context, limit, offset int, timeRange string) (*model.TopTracksPage, error)
	RecentlyPlayed(ctx context.Context, limit int, afterMs, beforeMs int64) (*model.RecentlyPlayedPage, error)
	CreatePlaylist(ctx context.Context, userID, name, description string, public, collaborative bool) (*model.Playlist, error)
	Episode(ctx context.Context, episodeID, market string) (*model.Episode, error)
	ShowEpisodes(ctx context.Context, showID string, limit, offset int, market string) (*model.ShowEpisodesPage, error)
}

// toolServer carries the per-process state every handler needs: the shared
// upstream client and the device name registry. Handlers are stateless
// otherwise; each one performs exactly one upstream call.
type toolServer struct {
	log      *zap.SugaredLogger
	spotify  spotifyAPI
	resolver *spotify.DeviceResolver
}

func newToolServer(log *zap.SugaredLogger, api spotifyAPI, resolver *spotify.DeviceResolver) *toolServer {
	return &toolServer{log: log, spotify: api, resolver: resolver}
}

// refreshDevices re-reads the device listing and records every name→id pair.
// Returns the number of devices seen.
func (s *toolServer) refreshDevices(ctx context.Context) (int, error) {
	devices, err := s.spotify.Devices(ctx)
	if err != nil {
		return 0, err
	}
	for _, d := range devices {
		s.resolver.Set(d.Name, d.ID)
	}
	return len(devices), nil
}

// resolveDevice maps an optional human device name to a device id. An empty
// or unknown name yields "", which targets the currently active device.
func (s *toolServer) resolveDevice(name string) string {
	id, ok := s.resolver.Resolve(name)
	if !ok {
		return ""
	}
	return id
}
