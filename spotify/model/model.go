// Package model holds the response shapes returned to tool callers.
// They are slim transcriptions of the Spotify Web API payloads: required
// fields only, no locally computed state.
package model

import "time"

// SimplifiedArtist carries the id and name of an artist.
type SimplifiedArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SimplifiedAlbum describes an album reference on a track or search result.
type SimplifiedAlbum struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	URI     string             `json:"uri"`
	Artists []SimplifiedArtist `json:"artists"`
}

// Track is the common track shape used across playback, library and search
// responses.
type Track struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	URI        string             `json:"uri"`
	Artists    []SimplifiedArtist `json:"artists"`
	DurationMs int                `json:"duration_ms"`
	Album      *SimplifiedAlbum   `json:"album,omitempty"`
}

// Device is a Spotify Connect playback endpoint.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent int    `json:"volume_percent"`
}

// DevicesResponse wraps the device listing.
type DevicesResponse struct {
	Devices []Device `json:"devices"`
}

// PlaybackState describes what is currently playing and where.
type PlaybackState struct {
	IsPlaying    bool   `json:"is_playing"`
	ProgressMs   int    `json:"progress_ms"`
	ShuffleState bool   `json:"shuffle_state"`
	Device       Device `json:"device"`
	Item         *Track `json:"item,omitempty"`
}

// Paging carries the upstream pagination envelope.
type Paging struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// SavedTrack is a library track with the time it was added.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// SavedTracksPage is one page of the user's saved tracks.
type SavedTracksPage struct {
	Paging
	Items []SavedTrack `json:"items"`
}

// TopTracksPage is one page of the user's top tracks.
type TopTracksPage struct {
	Paging
	Items []Track `json:"items"`
}

// RecentlyPlayedTrack pairs a track with the time it finished playing.
type RecentlyPlayedTrack struct {
	Track    Track     `json:"track"`
	PlayedAt time.Time `json:"played_at"`
}

// RecentlyPlayedPage holds the user's listening history.
type RecentlyPlayedPage struct {
	Items []RecentlyPlayedTrack `json:"items"`
	Limit int                   `json:"limit"`
}

// TracksSearchResult is the track portion of a search response.
type TracksSearchResult struct {
	Paging
	Items []Track `json:"items"`
}

// AlbumsSearchResult is the album portion of a search response.
type AlbumsSearchResult struct {
	Paging
	Items []SimplifiedAlbum `json:"items"`
}

// ArtistsSearchResult is the artist portion of a search response.
type ArtistsSearchResult struct {
	Paging
	Items []SimplifiedArtist `json:"items"`
}

// SearchResponse holds whichever result groups the query asked for.
type SearchResponse struct {
	Tracks  *TracksSearchResult  `json:"tracks,omitempty"`
	Albums  *AlbumsSearchResult  `json:"albums,omitempty"`
	Artists *ArtistsSearchResult `json:"artists,omitempty"`
}

// Playlist is the shape returned after creating a playlist.
type Playlist struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URI           string `json:"uri"`
	Description   string `json:"description,omitempty"`
	Public        bool   `json:"public"`
	Collaborative bool   `json:"collaborative"`
	OwnerID       string `json:"owner_id,omitempty"`
}

// Episode is a single podcast episode.
type Episode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URI         string `json:"uri"`
	Description string `json:"description,omitempty"`
	DurationMs  int    `json:"duration_ms"`
	ReleaseDate string `json:"release_date,omitempty"`
	Explicit    bool   `json:"explicit"`
}

// ShowEpisodesPage is one page of a show's episodes.
type ShowEpisodesPage struct {
	Paging
	Items []Episode `json:"items"`
}

// CheckSavedTracksResponse reports library membership per track id.
type CheckSavedTracksResponse struct {
	Tracks []string `json:"tracks"`
	Saved  []bool   `json:"saved"`
}

// ActionResult is the uniform acknowledgment for operations that return no
// payload (playback control, library writes).
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success builds an ActionResult with the given message.
func Success(message string) ActionResult {
	return ActionResult{Status: "success", Message: message}
}
