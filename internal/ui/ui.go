package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/queue"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	TrackListView
	PlayerView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	source     catalog.Source
	classifier *media.Classifier
	queue      *queue.Queue

	width  int
	height int

	playlistList list.Model
	trackList    list.Model

	tracks   map[string]models.Track
	selected *models.Playlist

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, source catalog.Source, classifier *media.Classifier, q *queue.Queue) *Model {
	return &Model{
		ctx:        ctx,
		view:       PlaylistListView,
		source:     source,
		classifier: classifier,
		queue:      q,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init loads the browse snapshot from the catalog source.
func (m *Model) Init() tea.Cmd {
	return m.fetchCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.playlistList.Width() == 0 {
			m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.trackList.Width() == 0 {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case PlayerView:
			return m.handlePlayerKeys(msg)
		}

	case catalogFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.tracks = msg.tracks

		// Section order first, Other last, same as the playlists page.
		var ordered []models.Playlist
		for _, group := range catalog.GroupByCategory(msg.playlists, models.DefaultCategoryOrder()) {
			ordered = append(ordered, group.Playlists...)
		}

		items := make([]list.Item, len(ordered))
		for i, pl := range ordered {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "TeO Music Studio"
		m.playlistList.SetSize(m.width-4, m.height-8)
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case TrackListView:
		return m.renderTrackList()
	case PlayerView:
		return m.renderPlayer()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if pl, ok := selected.(playlistItem); ok {
				m.openPlaylist(pl.playlist)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	case "enter":
		playable := m.classifier.PlayableTracks(m.selected.TrackIDs, m.tracks)
		if err := m.queue.LoadAndPlay(playable); err != nil {
			// Nothing playable; stay on the track list.
			return m, nil
		}
		m.view = PlayerView
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = TrackListView
		return m, nil
	case "n", "right":
		m.queue.Advance()
		return m, nil
	case "p", "left":
		m.queue.Retreat()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.source.Playlists(m.ctx)
		if err != nil {
			return catalogFetchedMsg{err: err}
		}
		tracks, err := m.source.Tracks(m.ctx)
		return catalogFetchedMsg{playlists: playlists, tracks: tracks, err: err}
	}
}

// openPlaylist resolves a playlist's track ids against the catalog snapshot
// and switches to the track list view.
func (m *Model) openPlaylist(playlist models.Playlist) {
	m.selected = &playlist

	resolved := media.ResolveTracks(playlist.TrackIDs, m.tracks)
	items := make([]list.Item, len(resolved))
	for i, track := range resolved {
		items[i] = trackItem{track: track, playable: m.classifier.IsPlayableInApp(track)}
	}

	m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.trackList.Title = fmt.Sprintf("Tracks in '%s'", playlist.Title)
	m.trackList.SetSize(m.width-4, m.height-8)
	m.view = TrackListView
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderTrackList() string {
	playKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play"),
	)
	helpKeys := []key.Binding{playKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderPlayer() string {
	title := styles.title.Render("Now Playing")

	current, ok := m.queue.Current()
	if !ok {
		return fmt.Sprintf("%s\n\n%s", title, styles.warn.Render("Queue is empty"))
	}

	artist := current.ArtistName
	if artist == "" {
		artist = "Unknown artist"
	}

	info := fmt.Sprintf(
		"\n%s\n%s\n\nTrack %d of %d\n%s",
		styles.ok.Render(current.Title),
		artist,
		m.queue.Position()+1,
		m.queue.Len(),
		styles.help.Render(current.SourceURL),
	)

	helpKeys := []key.Binding{m.keys.next, m.keys.prev, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n\n%s", title, info, helpView)
}
