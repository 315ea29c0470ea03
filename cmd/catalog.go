package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/formatter"
	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/tasks"
)

// CatalogTracks lists all catalog tracks.
func (r *Runner) CatalogTracks(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	store := catalog.NewStore(db)
	snapshot, err := store.Tracks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracks: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(snapshot, cmd.Bool("pretty"))
	}

	r.writePlainln("Tracks: %d", len(snapshot))
	for _, track := range snapshot {
		artist := track.ArtistName
		if artist == "" {
			artist = "Unknown artist"
		}
		r.writePlainln("  %s  %s - %s", track.ID, artist, track.Title)
	}
	return nil
}

// CatalogPlaylists lists curated playlists grouped by section, optionally
// exporting each playlist to files.
func (r *Runner) CatalogPlaylists(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	store := catalog.NewStore(db)
	playlists, err := store.Playlists(ctx)
	if err != nil {
		return fmt.Errorf("failed to load playlists: %w", err)
	}

	groups := catalog.GroupByCategory(playlists, models.DefaultCategoryOrder())

	if format := cmd.String("export"); format != "" {
		return r.exportPlaylists(ctx, store, playlists, format, cmd.String("output"))
	}

	if cmd.Bool("json") {
		return r.writeJSON(groups, cmd.Bool("pretty"))
	}

	for _, group := range groups {
		r.writePlainln("%s (%d)", group.Category, len(group.Playlists))
		for _, playlist := range group.Playlists {
			r.writePlainln("  %s  %s (%d tracks)", playlist.ID, playlist.Title, len(playlist.TrackIDs))
		}
	}
	return nil
}

// exportPlaylists writes each playlist through the formatter.
func (r *Runner) exportPlaylists(ctx context.Context, store *catalog.Store, playlists []models.Playlist, format, dir string) error {
	snapshot, err := store.Tracks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracks: %w", err)
	}

	for _, playlist := range playlists {
		export := &formatter.Export{
			Playlist: playlist,
			Tracks:   media.ResolveTracks(playlist.TrackIDs, snapshot),
		}

		files, err := formatter.WriteExport(export, format, dir)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", playlist.Title, err)
		}
		for _, file := range files {
			r.writePlainln("✓ %s", file)
		}
	}
	return nil
}

// CatalogVideos lists the video archive.
func (r *Runner) CatalogVideos(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	videos, err := catalog.NewStore(db).Videos(ctx)
	if err != nil {
		return fmt.Errorf("failed to load videos: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, cmd.Bool("pretty"))
	}

	r.writePlainln("Videos: %d", len(videos))
	for _, video := range videos {
		r.writePlainln("  %s  %s", video.ID, video.Title)
	}
	return nil
}

// CatalogNews lists news articles, newest first.
func (r *Runner) CatalogNews(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	articles, err := catalog.NewStore(db).News(ctx)
	if err != nil {
		return fmt.Errorf("failed to load news: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(articles, cmd.Bool("pretty"))
	}

	for _, article := range articles {
		r.writePlainln("%s  %s", article.Date.Format("2006-01-02"), article.Title)
		if article.Summary != "" {
			r.writePlainln("  %s", article.Summary)
		}
	}
	return nil
}

// CatalogAudit classifies every track source and prints the breakdown.
func (r *Runner) CatalogAudit(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := tasks.NewMaintenanceEngine(db, r.classifier())
	result, err := engine.Audit(ctx, nil)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if cmd.Bool("json") {
		// Kind keys stringify for JSON output.
		counts := make(map[string]int, len(result.Counts))
		for kind, count := range result.Counts {
			counts[kind.String()] = count
		}
		return r.writeJSON(map[string]any{
			"total":      result.Total,
			"counts":     counts,
			"playable":   result.Playable,
			"unplayable": result.Unplayable,
		}, true)
	}

	r.writePlainln("Audited %d tracks", result.Total)
	for _, kind := range []media.Kind{media.KindDirectAudio, media.KindYouTube, media.KindSunoPlaylist, media.KindUnsupported} {
		if count := result.Counts[kind]; count > 0 {
			r.writePlainln("  %-12s %d", kind, count)
		}
	}
	r.writePlainln("Playable in app: %d/%d", result.Playable, result.Total)
	if len(result.Unplayable) > 0 {
		r.writePlainln("Not playable:")
		for _, id := range result.Unplayable {
			r.writePlainln("  ✗ %s", id)
		}
	}
	return nil
}
