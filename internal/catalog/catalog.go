// Package catalog exposes the read-only content repository and the
// category aggregation used by the playlists page.
package catalog

import (
	"context"

	"github.com/teostudio/catalog/internal/models"
)

// Source is the content repository collaborator. Implementations provide
// read-only catalog snapshots; the core never writes through this interface.
type Source interface {
	// Tracks returns the current catalog snapshot keyed by track id.
	Tracks(ctx context.Context) (map[string]models.Track, error)

	// Playlists returns curated playlists in catalog order.
	Playlists(ctx context.Context) ([]models.Playlist, error)

	// Videos returns official videos in catalog order.
	Videos(ctx context.Context) ([]models.Video, error)

	// News returns news articles, newest first.
	News(ctx context.Context) ([]models.NewsArticle, error)
}
