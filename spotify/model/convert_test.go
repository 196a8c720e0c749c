package model

import (
	"testing"
	"time"

	spot "github.com/zmb3/spotify/v2"
	"github.com/stretchr/testify/assert"
)

func fullTrack(id, name string) spot.FullTrack {
	return spot.FullTrack{
		SimpleTrack: spot.SimpleTrack{
			ID:       spot.ID(id),
			Name:     name,
			URI:      spot.URI("spotify:track:" + id),
			Duration: 201000,
			Artists: []spot.SimpleArtist{
				{ID: "artist-1", Name: "Miles Davis"},
			},
		},
		Album: spot.SimpleAlbum{
			ID:   "album-1",
			Name: "Kind of Blue",
			URI:  "spotify:album:album-1",
			Artists: []spot.SimpleArtist{
				{ID: "artist-1", Name: "Miles Davis"},
			},
		},
	}
}

func TestTrackFromFull(t *testing.T) {
	track := TrackFromFull(fullTrack("track-1", "So What"))

	assert.Equal(t, "track-1", track.ID)
	assert.Equal(t, "So What", track.Name)
	assert.Equal(t, "spotify:track:track-1", track.URI)
	assert.Equal(t, 201000, track.DurationMs)
	if assert.Len(t, track.Artists, 1) {
		assert.Equal(t, "Miles Davis", track.Artists[0].Name)
	}
	if assert.NotNil(t, track.Album) {
		assert.Equal(t, "Kind of Blue", track.Album.Name)
		assert.Len(t, track.Album.Artists, 1)
	}
}

func TestTrackFromSimpleHasNoAlbum(t *testing.T) {
	track := TrackFromSimple(spot.SimpleTrack{
		ID:       "track-2",
		Name:     "Blue in Green",
		URI:      "spotify:track:track-2",
		Duration: 337000,
	})

	assert.Equal(t, "track-2", track.ID)
	assert.Nil(t, track.Album)
}

func TestDeviceFromPlayer(t *testing.T) {
	device := DeviceFromPlayer(spot.PlayerDevice{
		ID:     "dev-42",
		Name:   "Living Room",
		Type:   "Speaker",
		Active: true,
		Volume: 65,
	})

	assert.Equal(t, Device{
		ID:            "dev-42",
		Name:          "Living Room",
		Type:          "Speaker",
		IsActive:      true,
		VolumePercent: 65,
	}, device)
}

func TestPlaybackFromState(t *testing.T) {
	item := fullTrack("track-1", "So What")
	state := PlaybackFromState(&spot.PlayerState{
		CurrentlyPlaying: spot.CurrentlyPlaying{
			Playing:  true,
			Progress: 42000,
			Item:     &item,
		},
		Device:       spot.PlayerDevice{ID: "dev-42", Name: "Living Room"},
		ShuffleState: true,
	})

	if assert.NotNil(t, state) {
		assert.True(t, state.IsPlaying)
		assert.True(t, state.ShuffleState)
		assert.Equal(t, 42000, state.ProgressMs)
		assert.Equal(t, "dev-42", state.Device.ID)
		if assert.NotNil(t, state.Item) {
			assert.Equal(t, "So What", state.Item.Name)
		}
	}
}

func TestPlaybackFromStateNil(t *testing.T) {
	assert.Nil(t, PlaybackFromState(nil))
}

func TestPlaybackFromStateEmpty(t *testing.T) {
	// The player endpoint answers 204 with an empty body when nothing is
	// playing, which decodes into a zero value.
	assert.Nil(t, PlaybackFromState(&spot.PlayerState{}))
}

func TestSavedTracksFromPage(t *testing.T) {
	page := SavedTracksFromPage(&spot.SavedTrackPage{
		Tracks: []spot.SavedTrack{
			{AddedAt: "2025-01-22T10:00:00Z", FullTrack: fullTrack("track-1", "So What")},
		},
	})

	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, "2025-01-22T10:00:00Z", page.Items[0].AddedAt)
		assert.Equal(t, "So What", page.Items[0].Track.Name)
	}
}

func TestRecentlyPlayedFromItems(t *testing.T) {
	playedAt := time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)
	page := RecentlyPlayedFromItems([]spot.RecentlyPlayedItem{
		{
			Track:    spot.SimpleTrack{ID: "track-2", Name: "Blue in Green"},
			PlayedAt: playedAt,
		},
	}, 20)

	assert.Equal(t, 20, page.Limit)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, "Blue in Green", page.Items[0].Track.Name)
		assert.True(t, page.Items[0].PlayedAt.Equal(playedAt))
	}
}

func TestSearchFromResult(t *testing.T) {
	result := SearchFromResult(&spot.SearchResult{
		Tracks: &spot.FullTrackPage{
			Tracks: []spot.FullTrack{fullTrack("track-1", "So What")},
		},
		Albums: &spot.SimpleAlbumPage{
			Albums: []spot.SimpleAlbum{{ID: "album-1", Name: "Kind of Blue", URI: "spotify:album:album-1"}},
		},
	})

	if assert.NotNil(t, result.Tracks) {
		assert.Len(t, result.Tracks.Items, 1)
	}
	if assert.NotNil(t, result.Albums) {
		assert.Equal(t, "Kind of Blue", result.Albums.Items[0].Name)
	}
	assert.Nil(t, result.Artists)
}

func TestEpisodeFromPage(t *testing.T) {
	episode := EpisodeFromPage(&spot.EpisodePage{
		ID:          "ep-1",
		Name:        "Pilot",
		URI:         "spotify:episode:ep-1",
		Description: "First episode",
		Duration_ms: 1800000,
		ReleaseDate: "2024-06-01",
		Explicit:    true,
	})

	assert.Equal(t, "ep-1", episode.ID)
	assert.Equal(t, "Pilot", episode.Name)
	assert.Equal(t, 1800000, episode.DurationMs)
	assert.Equal(t, "2024-06-01", episode.ReleaseDate)
	assert.True(t, episode.Explicit)
}

func TestSuccess(t *testing.T) {
	result := Success("Playback started")
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Playback started", result.Message)
}
