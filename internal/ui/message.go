package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teostudio/catalog/internal/models"
)

// catalogFetchedMsg carries the browse snapshot loaded at startup.
type catalogFetchedMsg struct {
	playlists []models.Playlist
	tracks    map[string]models.Track
	err       error
}

var _ tea.Msg = catalogFetchedMsg{}
