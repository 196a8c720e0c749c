// Package spotify is the integration layer between the MCP tool surface and
// the Spotify Web API. It wraps the zmb3 client behind an explicit,
// enumerated set of operations, resolves human device names to device ids,
// and persists the OAuth token between runs.
package spotify

import (
	"context"
	"strings"

	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"spotify-mcp/spotify/model"
)

// Client is the facade over the upstream Spotify Web API client. Every
// supported operation is an explicit method: same parameters as upstream,
// result converted into the local model types, failure propagated unchanged.
// The underlying client is safe for concurrent use, so one Client serves all
// tool invocations; a blocking call only blocks its own goroutine.
type Client struct {
	api *spot.Client
	log *zap.SugaredLogger
}

// NewClient wraps an already authenticated upstream client.
func NewClient(api *spot.Client, log *zap.Logger) *Client {
	return &Client{api: api, log: log.Sugar()}
}

// Token returns the current OAuth token, including any refresh the transport
// performed since startup. Used to persist the token at shutdown.
func (c *Client) Token() (*oauth2.Token, error) {
	return c.api.Token()
}

// CurrentUserID returns the authenticated user's id.
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", wrapAPIError("current user", err)
	}
	return user.ID, nil
}

// CurrentPlayback returns the playback state, or nil when nothing is playing.
func (c *Client) CurrentPlayback(ctx context.Context, market string) (*model.PlaybackState, error) {
	opts := marketOpt(market)
	state, err := c.api.PlayerState(ctx, opts...)
	if err != nil {
		return nil, wrapAPIError("current playback", err)
	}
	return model.PlaybackFromState(state), nil
}

// Devices lists the user's available Spotify Connect devices.
func (c *Client) Devices(ctx context.Context) ([]model.Device, error) {
	devices, err := c.api.PlayerDevices(ctx)
	if err != nil {
		return nil, wrapAPIError("list devices", err)
	}
	c.log.Debugw("listed devices", "count", len(devices))
	return model.DevicesFromPlayer(devices), nil
}

// StartPlayback starts or resumes playback. Any of deviceID, contextURI,
// uris and positionMs may be zero; upstream then resumes on the active
// device.
func (c *Client) StartPlayback(ctx context.Context, deviceID, contextURI string, uris []string, positionMs int) error {
	opts := &spot.PlayOptions{PositionMs: spot.Numeric(positionMs)}
	if deviceID != "" {
		id := spot.ID(deviceID)
		opts.DeviceID = &id
	}
	if contextURI != "" {
		uri := spot.URI(contextURI)
		opts.PlaybackContext = &uri
	}
	for _, u := range uris {
		opts.URIs = append(opts.URIs, spot.URI(u))
	}
	c.log.Debugw("starting playback", "device_id", deviceID, "context_uri", contextURI, "uris", len(uris))
	return wrapAPIError("start playback", c.api.PlayOpt(ctx, opts))
}

// PausePlayback pauses playback on the given device, or the active one.
func (c *Client) PausePlayback(ctx context.Context, deviceID string) error {
	return wrapAPIError("pause playback", c.api.PauseOpt(ctx, deviceOpts(deviceID)))
}

// SkipToNext skips to the next track in the queue.
func (c *Client) SkipToNext(ctx context.Context, deviceID string) error {
	return wrapAPIError("skip to next", c.api.NextOpt(ctx, deviceOpts(deviceID)))
}

// SkipToPrevious skips back to the previous track.
func (c *Client) SkipToPrevious(ctx context.Context, deviceID string) error {
	return wrapAPIError("skip to previous", c.api.PreviousOpt(ctx, deviceOpts(deviceID)))
}

// SetShuffle toggles shuffle mode.
func (c *Client) SetShuffle(ctx context.Context, state bool, deviceID string) error {
	return wrapAPIError("set shuffle", c.api.ShuffleOpt(ctx, state, deviceOpts(deviceID)))
}

// AddToQueue appends a track to the playback queue. Accepts a bare id,
// spotify: URI or open.spotify.com URL.
func (c *Client) AddToQueue(ctx context.Context, uri, deviceID string) error {
	return wrapAPIError("add to queue", c.api.QueueSongOpt(ctx, extractID(uri), deviceOpts(deviceID)))
}

// SetVolume sets the playback volume, 0-100.
func (c *Client) SetVolume(ctx context.Context, percent int, deviceID string) error {
	return wrapAPIError("set volume", c.api.VolumeOpt(ctx, percent, deviceOpts(deviceID)))
}

// TransferPlayback moves playback to the given device. The device id must
// already be resolved; name resolution is the caller's concern.
func (c *Client) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	return wrapAPIError("transfer playback", c.api.TransferPlayback(ctx, spot.ID(deviceID), play))
}

// Search queries the catalog. types is a comma-separated list of
// track/album/artist; unknown entries are ignored and an empty list means
// track.
func (c *Client) Search(ctx context.Context, query, types string, limit int, market string) (*model.SearchResponse, error) {
	opts := append(marketOpt(market), spot.Limit(limit))
	result, err := c.api.Search(ctx, query, searchTypes(types), opts...)
	if err != nil {
		return nil, wrapAPIError("search", err)
	}
	return model.SearchFromResult(result), nil
}

// SavedTracks returns a page of the user's library.
func (c *Client) SavedTracks(ctx context.Context, limit, offset int, market string) (*model.SavedTracksPage, error) {
	opts := append(marketOpt(market), spot.Limit(limit), spot.Offset(offset))
	page, err := c.api.CurrentUsersTracks(ctx, opts...)
	if err != nil {
		return nil, wrapAPIError("saved tracks", err)
	}
	return model.SavedTracksFromPage(page), nil
}

// CheckSavedTracks reports, per id, whether the track is in the library.
func (c *Client) CheckSavedTracks(ctx context.Context, ids []string) ([]bool, error) {
	saved, err := c.api.UserHasTracks(ctx, trackIDs(ids)...)
	if err != nil {
		return nil, wrapAPIError("check saved tracks", err)
	}
	return saved, nil
}

// SaveTracks adds tracks to the user's library.
func (c *Client) SaveTracks(ctx context.Context, ids []string) error {
	return wrapAPIError("save tracks", c.api.AddTracksToLibrary(ctx, trackIDs(ids)...))
}

// RemoveSavedTracks removes tracks from the user's library.
func (c *Client) RemoveSavedTracks(ctx context.Context, ids []string) error {
	return wrapAPIError("remove saved tracks", c.api.RemoveTracksFromLibrary(ctx, trackIDs(ids)...))
}

// TopTracks returns the user's top tracks for the given time range
// (short_term, medium_term or long_term).
func (c *Client) TopTracks(ctx context.Context, limit, offset int, timeRange string) (*model.TopTracksPage, error) {
	opts := []spot.RequestOption{spot.Limit(limit), spot.Offset(offset), spot.Timerange(timerange(timeRange))}
	page, err := c.api.CurrentUsersTopTracks(ctx, opts...)
	if err != nil {
		return nil, wrapAPIError("top tracks", err)
	}
	return model.TopTracksFromPage(page), nil
}

// RecentlyPlayed returns the listening history. afterMs/beforeMs are unix
// millisecond timestamps; zero means unset.
func (c *Client) RecentlyPlayed(ctx context.Context, limit int, afterMs, beforeMs int64) (*model.RecentlyPlayedPage, error) {
	opts := &spot.RecentlyPlayedOptions{
		Limit:         spot.Numeric(limit),
		AfterEpochMs:  afterMs,
		BeforeEpochMs: beforeMs,
	}
	items, err := c.api.PlayerRecentlyPlayedOpt(ctx, opts)
	if err != nil {
		return nil, wrapAPIError("recently played", err)
	}
	return model.RecentlyPlayedFromItems(items, limit), nil
}

// CreatePlaylist creates a playlist owned by userID.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name, description string, public, collaborative bool) (*model.Playlist, error) {
	playlist, err := c.api.CreatePlaylistForUser(ctx, userID, name, description, public, collaborative)
	if err != nil {
		return nil, wrapAPIError("create playlist", err)
	}
	return model.PlaylistFromFull(playlist), nil
}

// Episode fetches a single podcast episode.
func (c *Client) Episode(ctx context.Context, episodeID, market string) (*model.Episode, error) {
	episode, err := c.api.GetEpisode(ctx, string(extractID(episodeID)), marketOpt(market)...)
	if err != nil {
		return nil, wrapAPIError("get episode", err)
	}
	return model.EpisodeFromPage(episode), nil
}

// ShowEpisodes returns a page of a show's episodes.
func (c *Client) ShowEpisodes(ctx context.Context, showID string, limit, offset int, market string) (*model.ShowEpisodesPage, error) {
	opts := append(marketOpt(market), spot.Limit(limit), spot.Offset(offset))
	page, err := c.api.GetShowEpisodes(ctx, string(extractID(showID)), opts...)
	if err != nil {
		return nil, wrapAPIError("show episodes", err)
	}
	return model.ShowEpisodesFromPage(page), nil
}

// deviceOpts builds PlayOptions targeting deviceID, or nil for the active
// device.
func deviceOpts(deviceID string) *spot.PlayOptions {
	if deviceID == "" {
		return nil
	}
	id := spot.ID(deviceID)
	return &spot.PlayOptions{DeviceID: &id}
}

func marketOpt(market string) []spot.RequestOption {
	if market == "" {
		return nil
	}
	return []spot.RequestOption{spot.Market(market)}
}

// extractID normalizes a bare id, a spotify:kind:id URI or an
// open.spotify.com URL down to the id.
func extractID(s string) spot.ID {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		s = strings.TrimSuffix(s, "/")
		if i := strings.Index(s, "?"); i >= 0 {
			s = s[:i]
		}
		if i := strings.LastIndex(s, "/"); i >= 0 {
			s = s[i+1:]
		}
		return spot.ID(s)
	}
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	return spot.ID(s)
}

func trackIDs(ids []string) []spot.ID {
	out := make([]spot.ID, 0, len(ids))
	for _, id := range ids {
		out = append(out, extractID(id))
	}
	return out
}

// searchTypes parses a comma-separated type list into the upstream bitmask.
// Empty or unrecognized input falls back to track search.
func searchTypes(types string) spot.SearchType {
	var st spot.SearchType
	for _, t := range strings.Split(types, ",") {
		switch strings.TrimSpace(strings.ToLower(t)) {
		case "track":
			st |= spot.SearchTypeTrack
		case "album":
			st |= spot.SearchTypeAlbum
		case "artist":
			st |= spot.SearchTypeArtist
		}
	}
	if st == 0 {
		st = spot.SearchTypeTrack
	}
	return st
}

// timerange maps the wire value onto the upstream constant, defaulting to
// medium_term like the upstream API.
func timerange(s string) spot.Range {
	switch strings.ToLower(s) {
	case "short_term":
		return spot.ShortTermRange
	case "long_term":
		return spot.LongTermRange
	default:
		return spot.MediumTermRange
	}
}
