package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/queue"
	"github.com/teostudio/catalog/internal/repositories"
	"github.com/teostudio/catalog/internal/shared"
)

// Play loads a curated playlist into the playback queue and prints the
// resulting queue. Unplayable and unresolved tracks are skipped; the first
// playable track becomes current.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("playlist")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := repositories.NewPlaylistRepository(db).Get(playlistID)
	if err != nil {
		return err
	}

	store := catalog.NewStore(db)
	snapshot, err := store.Tracks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracks: %w", err)
	}

	classifier := r.classifier()
	playable := classifier.PlayableTracks(playlist.TrackIDs, snapshot)

	q := queue.New()
	if err := q.LoadAndPlay(playable); err != nil {
		if errors.Is(err, shared.ErrEmptyQueue) {
			r.writePlainln("No playable tracks in %q (%d listed)", playlist.Title, len(playlist.TrackIDs))
			return nil
		}
		return err
	}

	if cmd.Bool("json") {
		current, _ := q.Current()
		return r.writeJSON(map[string]any{
			"playlist": playlist.Title,
			"queue":    q.Tracks(),
			"current":  current,
		}, true)
	}

	r.writePlainln("Playing %q: %d of %d tracks playable", playlist.Title, q.Len(), len(playlist.TrackIDs))
	for i, track := range q.Tracks() {
		marker := "  "
		if i == q.Position() {
			marker = "▶ "
		}
		artist := track.ArtistName
		if artist == "" {
			artist = "Unknown artist"
		}
		r.writePlainln("%s%d. %s - %s", marker, i+1, artist, track.Title)
	}
	return nil
}
