package library_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
	th "github.com/teostudio/catalog/internal/testing"
)

func newEditor(t *testing.T, owner models.User, store *th.MockPersistence) (*library.Editor, *th.MockNotifier) {
	t.Helper()
	notifier := &th.MockNotifier{}
	logger := log.New(io.Discard)
	return library.NewEditor(owner, store, notifier, logger), notifier
}

func TestEditorCreate(t *testing.T) {
	ctx := context.Background()
	owner := models.User{ID: "user-1", Email: "teo@example.com", Name: "Teo"}

	t.Run("creates an empty playlist and persists it", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, notifier := newEditor(t, owner, store)

		playlist, err := editor.Create(ctx, "Morning Mix", "coffee music")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if playlist.ID == "" {
			t.Error("expected a generated playlist id")
		}
		if playlist.OwnerID != owner.ID {
			t.Errorf("owner = %q, want %q", playlist.OwnerID, owner.ID)
		}
		if len(playlist.TrackIDs) != 0 {
			t.Errorf("expected empty track list, got %v", playlist.TrackIDs)
		}
		if len(store.Created) != 1 {
			t.Fatalf("expected 1 persisted playlist, got %d", len(store.Created))
		}
		if len(notifier.Successes) != 1 {
			t.Errorf("expected a success notice, got %v", notifier.Successes)
		}
	})

	t.Run("rejects blank titles before touching state", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, notifier := newEditor(t, owner, store)

		if _, err := editor.Create(ctx, "   ", ""); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
		if len(editor.Playlists()) != 0 {
			t.Error("blank title should not add a playlist")
		}
		if len(store.Created) != 0 {
			t.Error("blank title should not reach persistence")
		}
		if len(notifier.Errors) != 1 {
			t.Errorf("expected an error notice, got %v", notifier.Errors)
		}
	})

	t.Run("keeps local state when persistence fails", func(t *testing.T) {
		store := th.NewMockPersistence()
		store.Fail = true
		editor, notifier := newEditor(t, owner, store)

		if _, err := editor.Create(ctx, "Keeper", ""); err != nil {
			t.Fatalf("Create returned %v, want nil on persistence failure", err)
		}
		if len(editor.Playlists()) != 1 {
			t.Error("playlist should survive a persistence failure")
		}
		if len(notifier.Errors) != 1 {
			t.Errorf("expected an error notice, got %v", notifier.Errors)
		}
	})
}

func TestEditorRename(t *testing.T) {
	ctx := context.Background()
	owner := models.User{ID: "user-1", Playlists: []models.UserPlaylist{
		{ID: "pl-1", OwnerID: "user-1", Title: "Old Name", TrackIDs: []string{"t1"}},
	}}

	t.Run("updates title and description without validation", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, _ := newEditor(t, owner, store)

		if err := editor.Rename(ctx, "pl-1", "", "now blank"); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		got, ok := editor.Get("pl-1")
		if !ok {
			t.Fatal("playlist vanished after rename")
		}
		if got.Title != "" || got.Description != "now blank" {
			t.Errorf("got title=%q desc=%q", got.Title, got.Description)
		}
		if len(store.Updated["pl-1"]) != 1 {
			t.Errorf("expected 1 persisted patch, got %d", len(store.Updated["pl-1"]))
		}
	})

	t.Run("unknown id returns ErrPlaylistNotFound", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		if err := editor.Rename(ctx, "missing", "x", ""); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("rename survives persistence failure", func(t *testing.T) {
		store := th.NewMockPersistence()
		store.Fail = true
		editor, notifier := newEditor(t, owner, store)

		if err := editor.Rename(ctx, "pl-1", "New Name", ""); err != nil {
			t.Fatalf("Rename returned %v, want nil", err)
		}
		got, _ := editor.Get("pl-1")
		if got.Title != "New Name" {
			t.Errorf("title = %q, want %q", got.Title, "New Name")
		}
		if len(notifier.Errors) != 1 {
			t.Errorf("expected an error notice, got %v", notifier.Errors)
		}
	})
}

func TestEditorTracks(t *testing.T) {
	ctx := context.Background()
	owner := models.User{ID: "user-1", Playlists: []models.UserPlaylist{
		{ID: "pl-1", OwnerID: "user-1", Title: "Mix", TrackIDs: []string{"a", "b", "a"}},
	}}

	t.Run("remove drops every occurrence", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		if err := editor.RemoveTrack(ctx, "pl-1", "a"); err != nil {
			t.Fatalf("RemoveTrack failed: %v", err)
		}
		got, _ := editor.Get("pl-1")
		if len(got.TrackIDs) != 1 || got.TrackIDs[0] != "b" {
			t.Errorf("tracks = %v, want [b]", got.TrackIDs)
		}
	})

	t.Run("removing the last track keeps the playlist", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		for _, id := range []string{"a", "b"} {
			if err := editor.RemoveTrack(ctx, "pl-1", id); err != nil {
				t.Fatalf("RemoveTrack(%s) failed: %v", id, err)
			}
		}
		got, ok := editor.Get("pl-1")
		if !ok {
			t.Fatal("empty playlist should still exist")
		}
		if len(got.TrackIDs) != 0 {
			t.Errorf("tracks = %v, want empty", got.TrackIDs)
		}
	})

	t.Run("add allows duplicates", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		if err := editor.AddTrack(ctx, "pl-1", "a"); err != nil {
			t.Fatalf("AddTrack failed: %v", err)
		}
		got, _ := editor.Get("pl-1")
		if len(got.TrackIDs) != 4 {
			t.Errorf("tracks = %v, want 4 entries", got.TrackIDs)
		}
	})

	t.Run("unknown playlist returns ErrPlaylistNotFound", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		if err := editor.RemoveTrack(ctx, "missing", "a"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestEditorDelete(t *testing.T) {
	ctx := context.Background()
	owner := models.User{ID: "user-1", Playlists: []models.UserPlaylist{
		{ID: "pl-1", OwnerID: "user-1", Title: "Doomed"},
	}}

	t.Run("requires confirmation", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, _ := newEditor(t, owner, store)

		declined := func(models.UserPlaylist) bool { return false }
		if err := editor.Delete(ctx, "pl-1", declined); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok := editor.Get("pl-1"); !ok {
			t.Error("declined delete should keep the playlist")
		}
		if len(store.Deleted) != 0 {
			t.Error("declined delete should not reach persistence")
		}
	})

	t.Run("confirmed delete removes and persists", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, notifier := newEditor(t, owner, store)

		confirmed := func(models.UserPlaylist) bool { return true }
		if err := editor.Delete(ctx, "pl-1", confirmed); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok := editor.Get("pl-1"); ok {
			t.Error("playlist should be gone after delete")
		}
		if len(store.Deleted) != 1 || store.Deleted[0] != "pl-1" {
			t.Errorf("persisted deletes = %v, want [pl-1]", store.Deleted)
		}
		if len(notifier.Successes) != 1 {
			t.Errorf("expected a success notice, got %v", notifier.Successes)
		}
	})

	t.Run("deleting an unknown id is a no-op", func(t *testing.T) {
		editor, _ := newEditor(t, owner, th.NewMockPersistence())
		if err := editor.Delete(ctx, "missing", nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestEditorConcurrentUse(t *testing.T) {
	ctx := context.Background()
	owner := models.User{ID: "user-1", Email: "teo@example.com", Name: "Teo"}

	t.Run("concurrent creates all land", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, _ := newEditor(t, owner, store)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if _, err := editor.Create(ctx, fmt.Sprintf("Mix %d", n), ""); err != nil {
					t.Errorf("Create failed: %v", err)
				}
			}(i)
		}
		wg.Wait()

		if got := len(editor.Playlists()); got != 8 {
			t.Errorf("playlists = %d, want 8", got)
		}
		if got := len(store.Created); got != 8 {
			t.Errorf("persisted playlists = %d, want 8", got)
		}
	})

	t.Run("concurrent track edits on one playlist", func(t *testing.T) {
		store := th.NewMockPersistence()
		editor, _ := newEditor(t, owner, store)

		playlist, err := editor.Create(ctx, "Shared", "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if err := editor.AddTrack(ctx, playlist.ID, fmt.Sprintf("track-%d", n)); err != nil {
					t.Errorf("AddTrack failed: %v", err)
				}
			}(i)
		}
		wg.Wait()

		got, ok := editor.Get(playlist.ID)
		if !ok {
			t.Fatal("playlist disappeared")
		}
		if len(got.TrackIDs) != 8 {
			t.Errorf("tracks = %d, want 8", len(got.TrackIDs))
		}
	})
}
