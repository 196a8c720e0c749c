package model

import (
	spot "github.com/zmb3/spotify/v2"
)

// The converters transcribe the zmb3 wire types into the local shapes.
// They never drop errors or invent data; absent upstream values stay absent.

// ArtistsFromSimple converts a list of upstream artists.
func ArtistsFromSimple(artists []spot.SimpleArtist) []SimplifiedArtist {
	out := make([]SimplifiedArtist, 0, len(artists))
	for _, a := range artists {
		out = append(out, SimplifiedArtist{ID: string(a.ID), Name: a.Name})
	}
	return out
}

// AlbumFromSimple converts an upstream album reference.
func AlbumFromSimple(album spot.SimpleAlbum) SimplifiedAlbum {
	return SimplifiedAlbum{
		ID:      string(album.ID),
		Name:    album.Name,
		URI:     string(album.URI),
		Artists: ArtistsFromSimple(album.Artists),
	}
}

// TrackFromFull converts a full track, including its album.
func TrackFromFull(t spot.FullTrack) Track {
	album := AlbumFromSimple(t.Album)
	return Track{
		ID:         string(t.ID),
		Name:       t.Name,
		URI:        string(t.URI),
		Artists:    ArtistsFromSimple(t.Artists),
		DurationMs: int(t.Duration),
		Album:      &album,
	}
}

// TrackFromSimple converts a simple track; the album is not part of the
// upstream shape and stays nil.
func TrackFromSimple(t spot.SimpleTrack) Track {
	return Track{
		ID:         string(t.ID),
		Name:       t.Name,
		URI:        string(t.URI),
		Artists:    ArtistsFromSimple(t.Artists),
		DurationMs: int(t.Duration),
	}
}

// DeviceFromPlayer converts a Spotify Connect device.
func DeviceFromPlayer(d spot.PlayerDevice) Device {
	return Device{
		ID:            string(d.ID),
		Name:          d.Name,
		Type:          d.Type,
		IsActive:      d.Active,
		VolumePercent: int(d.Volume),
	}
}

// DevicesFromPlayer converts a device listing.
func DevicesFromPlayer(devices []spot.PlayerDevice) []Device {
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		out = append(out, DeviceFromPlayer(d))
	}
	return out
}

// PlaybackFromState converts the player state. Returns nil when upstream
// reports no active playback; a 204 from the player endpoint decodes into a
// zero-valued state rather than a nil pointer, so both are treated as empty.
func PlaybackFromState(ps *spot.PlayerState) *PlaybackState {
	if ps == nil {
		return nil
	}
	if ps.Item == nil && !ps.Playing && ps.Device.ID == "" {
		return nil
	}
	state := &PlaybackState{
		IsPlaying:    ps.Playing,
		ProgressMs:   int(ps.Progress),
		ShuffleState: ps.ShuffleState,
		Device:       DeviceFromPlayer(ps.Device),
	}
	if ps.Item != nil {
		track := TrackFromFull(*ps.Item)
		state.Item = &track
	}
	return state
}

// SavedTracksFromPage converts a page of the user's library.
func SavedTracksFromPage(page *spot.SavedTrackPage) *SavedTracksPage {
	out := &SavedTracksPage{
		Paging: Paging{
			Total:  int(page.Total),
			Limit:  int(page.Limit),
			Offset: int(page.Offset),
		},
		Items: make([]SavedTrack, 0, len(page.Tracks)),
	}
	for _, t := range page.Tracks {
		out.Items = append(out.Items, SavedTrack{
			AddedAt: t.AddedAt,
			Track:   TrackFromFull(t.FullTrack),
		})
	}
	return out
}

// TopTracksFromPage converts a page of the user's top tracks.
func TopTracksFromPage(page *spot.FullTrackPage) *TopTracksPage {
	out := &TopTracksPage{
		Paging: Paging{
			Total:  int(page.Total),
			Limit:  int(page.Limit),
			Offset: int(page.Offset),
		},
		Items: make([]Track, 0, len(page.Tracks)),
	}
	for _, t := range page.Tracks {
		out.Items = append(out.Items, TrackFromFull(t))
	}
	return out
}

// RecentlyPlayedFromItems converts the listening history. The upstream
// endpoint has no paging envelope, only the requested limit.
func RecentlyPlayedFromItems(items []spot.RecentlyPlayedItem, limit int) *RecentlyPlayedPage {
	out := &RecentlyPlayedPage{
		Items: make([]RecentlyPlayedTrack, 0, len(items)),
		Limit: limit,
	}
	for _, item := range items {
		out.Items = append(out.Items, RecentlyPlayedTrack{
			Track:    TrackFromSimple(item.Track),
			PlayedAt: item.PlayedAt,
		})
	}
	return out
}

// SearchFromResult converts whichever groups the search returned.
func SearchFromResult(result *spot.SearchResult) *SearchResponse {
	out := &SearchResponse{}
	if result.Tracks != nil {
		tracks := &TracksSearchResult{
			Paging: Paging{
				Total:  int(result.Tracks.Total),
				Limit:  int(result.Tracks.Limit),
				Offset: int(result.Tracks.Offset),
			},
			Items: make([]Track, 0, len(result.Tracks.Tracks)),
		}
		for _, t := range result.Tracks.Tracks {
			tracks.Items = append(tracks.Items, TrackFromFull(t))
		}
		out.Tracks = tracks
	}
	if result.Albums != nil {
		albums := &AlbumsSearchResult{
			Paging: Paging{
				Total:  int(result.Albums.Total),
				Limit:  int(result.Albums.Limit),
				Offset: int(result.Albums.Offset),
			},
			Items: make([]SimplifiedAlbum, 0, len(result.Albums.Albums)),
		}
		for _, a := range result.Albums.Albums {
			albums.Items = append(albums.Items, AlbumFromSimple(a))
		}
		out.Albums = albums
	}
	if result.Artists != nil {
		artists := &ArtistsSearchResult{
			Paging: Paging{
				Total:  int(result.Artists.Total),
				Limit:  int(result.Artists.Limit),
				Offset: int(result.Artists.Offset),
			},
			Items: make([]SimplifiedArtist, 0, len(result.Artists.Artists)),
		}
		for _, a := range result.Artists.Artists {
			artists.Items = append(artists.Items, SimplifiedArtist{ID: string(a.ID), Name: a.Name})
		}
		out.Artists = artists
	}
	return out
}

// PlaylistFromFull converts a created playlist.
func PlaylistFromFull(p *spot.FullPlaylist) *Playlist {
	return &Playlist{
		ID:            string(p.ID),
		Name:          p.Name,
		URI:           string(p.URI),
		Description:   p.Description,
		Public:        p.IsPublic,
		Collaborative: p.Collaborative,
		OwnerID:       p.Owner.ID,
	}
}

// EpisodeFromPage converts a single episode.
func EpisodeFromPage(e *spot.EpisodePage) *Episode {
	return &Episode{
		ID:          string(e.ID),
		Name:        e.Name,
		URI:         string(e.URI),
		Description: e.Description,
		DurationMs:  int(e.Duration_ms),
		ReleaseDate: e.ReleaseDate,
		Explicit:    e.Explicit,
	}
}

// ShowEpisodesFromPage converts a page of a show's episodes.
func ShowEpisodesFromPage(page *spot.SimpleEpisodePage) *ShowEpisodesPage {
	out := &ShowEpisodesPage{
		Paging: Paging{
			Total:  int(page.Total),
			Limit:  int(page.Limit),
			Offset: int(page.Offset),
		},
		Items: make([]Episode, 0, len(page.Episodes)),
	}
	for _, e := range page.Episodes {
		episode := e
		out.Items = append(out.Items, *EpisodeFromPage(&episode))
	}
	return out
}
