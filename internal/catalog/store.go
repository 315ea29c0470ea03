package catalog

import (
	"context"
	"database/sql"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/repositories"
)

// Store is the SQLite-backed [Source]. It reads through the repositories
// layer, so soft-deleted rows never reach browse surfaces.
type Store struct {
	tracks    *repositories.TrackRepository
	playlists *repositories.PlaylistRepository
	videos    *repositories.VideoRepository
	news      *repositories.NewsRepository
}

// NewStore creates a Store over the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		tracks:    repositories.NewTrackRepository(db),
		playlists: repositories.NewPlaylistRepository(db),
		videos:    repositories.NewVideoRepository(db),
		news:      repositories.NewNewsRepository(db),
	}
}

// Tracks returns the catalog snapshot keyed by track id.
func (s *Store) Tracks(ctx context.Context) (map[string]models.Track, error) {
	rows, err := s.tracks.List(nil)
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]models.Track, len(rows))
	for _, track := range rows {
		snapshot[track.ID] = *track
	}
	return snapshot, nil
}

// Playlists returns all curated playlists in catalog order.
func (s *Store) Playlists(ctx context.Context) ([]models.Playlist, error) {
	rows, err := s.playlists.List(nil)
	if err != nil {
		return nil, err
	}

	playlists := make([]models.Playlist, len(rows))
	for i, playlist := range rows {
		playlists[i] = *playlist
	}
	return playlists, nil
}

// Videos returns the video archive in catalog order.
func (s *Store) Videos(ctx context.Context) ([]models.Video, error) {
	rows, err := s.videos.List(nil)
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, len(rows))
	for i, video := range rows {
		videos[i] = *video
	}
	return videos, nil
}

// News returns news articles, newest first.
func (s *Store) News(ctx context.Context) ([]models.NewsArticle, error) {
	rows, err := s.news.List(nil)
	if err != nil {
		return nil, err
	}

	articles := make([]models.NewsArticle, len(rows))
	for i, article := range rows {
		articles[i] = *article
	}
	return articles, nil
}
