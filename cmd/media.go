package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/shared"
)

// MediaClassify classifies a single source URL.
func (r *Runner) MediaClassify(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("url")
	if raw == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}

	r.reloadConfig(cmd.String("config"))

	classification := r.classifier().Classify(raw)

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"kind":       classification.Kind.String(),
			"videoId":    classification.VideoID,
			"playlistId": classification.PlaylistID,
			"url":        classification.URL,
			"playable":   classification.Kind == media.KindDirectAudio,
		}, true)
	}

	r.writePlainln("Kind: %s", classification.Kind)
	switch classification.Kind {
	case media.KindYouTube:
		r.writePlainln("Video ID: %s", classification.VideoID)
	case media.KindSunoPlaylist:
		r.writePlainln("Playlist ID: %s", classification.PlaylistID)
	case media.KindDirectAudio:
		r.writePlainln("Streamable: %s", classification.URL)
	}
	return nil
}

// MediaPlayable reports whether a source URL can stream inside the app.
func (r *Runner) MediaPlayable(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("url")
	if raw == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}

	r.reloadConfig(cmd.String("config"))

	classification := r.classifier().Classify(raw)
	playable := classification.Kind == media.KindDirectAudio

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"kind":     classification.Kind.String(),
			"playable": playable,
		}, true)
	}

	if playable {
		r.writePlainln("✓ playable in app")
	} else {
		r.writePlainln("✗ not playable in app (%s)", classification.Kind)
	}
	return nil
}

// MediaEmbed resolves a provider URL to its embed form.
func (r *Runner) MediaEmbed(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("url")
	if raw == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}

	r.reloadConfig(cmd.String("config"))

	opts := media.EmbedOptions{Autoplay: cmd.Bool("autoplay")}
	embed, err := r.classifier().EmbedURL(raw, opts)
	if err != nil {
		return err
	}

	r.writePlainln("%s", embed)
	return nil
}
