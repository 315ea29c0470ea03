package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/teostudio/catalog/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%s • %d tracks", i.playlist.Category, len(i.playlist.TrackIDs))
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track    models.Track
	playable bool
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := i.track.ArtistName
	if desc == "" {
		desc = "Unknown artist"
	}
	if !i.playable {
		desc = fmt.Sprintf("%s • not playable in app", desc)
	}
	return desc
}
