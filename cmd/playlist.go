package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/models"
)

// PlaylistList lists the session user's playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	playlists := editor.Playlists()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlainln("No playlists yet. Create one with 'teocat playlist create --title ...'")
		return nil
	}

	for _, playlist := range playlists {
		r.writePlainln("%s  %s (%d tracks)", playlist.ID, playlist.Title, len(playlist.TrackIDs))
		if playlist.Description != "" {
			r.writePlainln("  %s", playlist.Description)
		}
	}
	return nil
}

// PlaylistCreate creates a new playlist for the session user.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	playlist, err := editor.Create(ctx, cmd.String("title"), cmd.String("description"))
	if err != nil {
		return err
	}

	r.writePlainln("ID: %s", playlist.ID)
	return nil
}

// PlaylistRename updates a playlist's title and description.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	id := cmd.String("id")
	title := cmd.String("title")
	description := cmd.String("description")

	// Unset flags keep the current values; an explicit empty title is
	// allowed here, unlike at creation.
	if current, ok := editor.Get(id); ok {
		if !cmd.IsSet("title") {
			title = current.Title
		}
		if !cmd.IsSet("description") {
			description = current.Description
		}
	}

	return editor.Rename(ctx, id, title, description)
}

// PlaylistAddTrack appends a track to a playlist.
func (r *Runner) PlaylistAddTrack(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	return editor.AddTrack(ctx, cmd.String("id"), cmd.String("track"))
}

// PlaylistRemoveTrack removes every occurrence of a track from a playlist.
func (r *Runner) PlaylistRemoveTrack(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	return editor.RemoveTrack(ctx, cmd.String("id"), cmd.String("track"))
}

// PlaylistDelete deletes a playlist after confirmation.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	editor, err := r.sessionEditor(db)
	if err != nil {
		return err
	}

	confirm := func(playlist models.UserPlaylist) bool {
		if cmd.Bool("yes") {
			return true
		}
		r.writePlain("Delete playlist %q? [y/N] ", playlist.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	if err := editor.Delete(ctx, cmd.String("id"), confirm); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return nil
}
