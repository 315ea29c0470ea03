package library

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// Editor manages one user's playlists. Its in-memory list is the state the
// UI renders; persistence happens after each local mutation and a failure
// there produces a notice, not a rollback.
//
// One Editor is shared between surfaces, including concurrent HTTP
// handlers, so every method takes the editor lock.
type Editor struct {
	mu       sync.Mutex
	owner    models.User
	items    []models.UserPlaylist
	store    Persistence
	notifier Notifier
	logger   *log.Logger
}

// NewEditor seeds the editor with the owner's saved playlists.
func NewEditor(owner models.User, store Persistence, notifier Notifier, logger *log.Logger) *Editor {
	items := make([]models.UserPlaylist, len(owner.Playlists))
	copy(items, owner.Playlists)

	return &Editor{
		owner:    owner,
		items:    items,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Playlists returns a snapshot of the editor's current playlists.
func (e *Editor) Playlists() []models.UserPlaylist {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.UserPlaylist, len(e.items))
	copy(out, e.items)
	return out
}

// Get looks up a playlist by id in local state.
func (e *Editor) Get(id string) (models.UserPlaylist, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, item := range e.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.UserPlaylist{}, false
}

// Create validates the title, appends a new empty playlist locally and then
// persists it. A blank or whitespace-only title is rejected before any state
// changes.
func (e *Editor) Create(ctx context.Context, title, description string) (models.UserPlaylist, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		e.notifier.Error("Playlist title cannot be empty.")
		return models.UserPlaylist{}, fmt.Errorf("%w: playlist title is required", shared.ErrValidation)
	}

	now := time.Now().UTC()
	playlist := models.UserPlaylist{
		ID:          shared.GenerateID(),
		OwnerID:     e.owner.ID,
		Title:       title,
		Description: description,
		TrackIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	e.items = append(e.items, playlist)
	e.notifier.Success(fmt.Sprintf("Playlist %q created!", title))

	if err := e.store.CreateUserPlaylist(ctx, playlist); err != nil {
		e.logger.Error("failed to persist playlist", "id", playlist.ID, "error", err)
		e.notifier.Error("Could not save the new playlist.")
	}

	return playlist, nil
}

// Rename updates a playlist's title and description. Unlike Create it does
// not validate the title, so a rename to blank is accepted.
func (e *Editor) Rename(ctx context.Context, id, title, description string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.index(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	e.items[idx].Title = title
	e.items[idx].Description = description
	e.items[idx].UpdatedAt = time.Now().UTC()
	e.notifier.Success("Playlist details updated!")

	patch := UserPlaylistPatch{Title: &title, Description: &description}
	if err := e.store.UpdateUserPlaylist(ctx, id, patch); err != nil {
		e.logger.Error("failed to persist rename", "id", id, "error", err)
		e.notifier.Error("Could not save playlist details.")
	}

	return nil
}

// AddTrack appends a track id to a playlist. Duplicates are allowed.
func (e *Editor) AddTrack(ctx context.Context, id, trackID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.index(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	e.items[idx].TrackIDs = append(e.items[idx].TrackIDs, trackID)
	e.items[idx].UpdatedAt = time.Now().UTC()

	return e.persistTracks(ctx, id, idx)
}

// RemoveTrack drops every occurrence of a track id from a playlist. Removing
// the last track leaves the playlist in place, empty.
func (e *Editor) RemoveTrack(ctx context.Context, id, trackID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.index(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	kept := make([]string, 0, len(e.items[idx].TrackIDs))
	for _, tid := range e.items[idx].TrackIDs {
		if tid != trackID {
			kept = append(kept, tid)
		}
	}
	e.items[idx].TrackIDs = kept
	e.items[idx].UpdatedAt = time.Now().UTC()

	return e.persistTracks(ctx, id, idx)
}

// Delete removes a playlist after the confirm callback approves it. A
// declined confirmation is a no-op, as is deleting an id that is already
// gone.
func (e *Editor) Delete(ctx context.Context, id string, confirm func(models.UserPlaylist) bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.index(id)
	if idx < 0 {
		return nil
	}

	if confirm != nil && !confirm(e.items[idx]) {
		return nil
	}

	title := e.items[idx].Title
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	e.notifier.Success(fmt.Sprintf("Playlist %q deleted.", title))

	if err := e.store.DeleteUserPlaylist(ctx, id); err != nil {
		e.logger.Error("failed to persist delete", "id", id, "error", err)
		e.notifier.Error("Could not delete the playlist.")
	}

	return nil
}

// persistTracks writes a playlist's track list through to the store. The
// caller holds e.mu.
func (e *Editor) persistTracks(ctx context.Context, id string, idx int) error {
	tracks := make([]string, len(e.items[idx].TrackIDs))
	copy(tracks, e.items[idx].TrackIDs)

	if err := e.store.UpdateUserPlaylist(ctx, id, UserPlaylistPatch{TrackIDs: &tracks}); err != nil {
		e.logger.Error("failed to persist tracks", "id", id, "error", err)
		e.notifier.Error("Could not save playlist changes.")
	}

	return nil
}

// index finds a playlist's position in local state. The caller holds e.mu.
func (e *Editor) index(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
