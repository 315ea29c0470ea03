package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// PlaylistRepository implements models.Repository[*models.Playlist] for curated playlists.
//
// Track membership is stored denormalized as a JSON id list, preserving
// playback order and duplicate entries.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new [models.Playlist] into the database, generating an ID when absent
func (r *PlaylistRepository) Create(playlist *models.Playlist) error {
	sequence, err := NextSequence(r.db, "playlists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	if playlist.ID == "" {
		playlist.ID = shared.GenerateID()
	}

	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	trackIDs, err := encodeIDs(playlist.TrackIDs)
	if err != nil {
		return err
	}

	now := time.Now()
	query := `
		INSERT INTO playlists (id, sequence, title, description, cover_image_url, category, track_ids, external_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		playlist.ID,
		sequence,
		playlist.Title,
		playlist.Description,
		playlist.CoverImageURL,
		string(playlist.Category),
		trackIDs,
		playlist.ExternalURL,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

// Get retrieves a playlist by ID, excluding soft-deleted playlists
func (r *PlaylistRepository) Get(id string) (*models.Playlist, error) {
	query := `
		SELECT id, title, description, cover_image_url, category, track_ids, external_url
		FROM playlists
		WHERE id = ? AND deleted_at IS NULL
	`

	playlist := &models.Playlist{}
	var category, trackIDs string

	err := r.db.QueryRow(query, id).Scan(
		&playlist.ID,
		&playlist.Title,
		&playlist.Description,
		&playlist.CoverImageURL,
		&category,
		&trackIDs,
		&playlist.ExternalURL,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	playlist.Category = models.Category(category)
	if playlist.TrackIDs, err = decodeIDs(trackIDs); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Update modifies an existing playlist in the database
func (r *PlaylistRepository) Update(playlist *models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	trackIDs, err := encodeIDs(playlist.TrackIDs)
	if err != nil {
		return err
	}

	query := `
		UPDATE playlists
		SET title = ?, description = ?, cover_image_url = ?, category = ?, track_ids = ?, external_url = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		playlist.Title,
		playlist.Description,
		playlist.CoverImageURL,
		string(playlist.Category),
		trackIDs,
		playlist.ExternalURL,
		time.Now(),
		playlist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlist.ID)
	}

	return nil
}

// Delete soft-deletes a playlist by ID
func (r *PlaylistRepository) Delete(id string) error {
	query := `
		UPDATE playlists
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	return nil
}

// List retrieves all playlists matching the given criteria, excluding soft-deleted playlists
func (r *PlaylistRepository) List(criteria map[string]any) ([]*models.Playlist, error) {
	query := `
		SELECT id, title, description, cover_image_url, category, track_ids, external_url
		FROM playlists
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if category, ok := criteria["category"].(string); ok && category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*models.Playlist
	for rows.Next() {
		playlist := &models.Playlist{}
		var category, trackIDs string

		err := rows.Scan(
			&playlist.ID,
			&playlist.Title,
			&playlist.Description,
			&playlist.CoverImageURL,
			&category,
			&trackIDs,
			&playlist.ExternalURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}

		playlist.Category = models.Category(category)
		if playlist.TrackIDs, err = decodeIDs(trackIDs); err != nil {
			return nil, err
		}

		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}
