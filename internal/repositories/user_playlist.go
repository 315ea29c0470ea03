package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// UserPlaylistRepository implements models.Repository[*models.UserPlaylist]
// for personal playlists. It also satisfies [library.Persistence], making it
// the editor's storage collaborator.
type UserPlaylistRepository struct {
	db *sql.DB
}

// NewUserPlaylistRepository creates a new UserPlaylistRepository with the given database connection
func NewUserPlaylistRepository(db *sql.DB) *UserPlaylistRepository {
	return &UserPlaylistRepository{db: db}
}

// Create inserts a new [models.UserPlaylist] into the database
func (r *UserPlaylistRepository) Create(playlist *models.UserPlaylist) error {
	sequence, err := NextSequence(r.db, "user_playlists")
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
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = now
	}
	if playlist.UpdatedAt.IsZero() {
		playlist.UpdatedAt = now
	}

	query := `
		INSERT INTO user_playlists (id, sequence, user_id, title, description, track_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		playlist.ID,
		sequence,
		playlist.OwnerID,
		playlist.Title,
		playlist.Description,
		trackIDs,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user playlist: %w", err)
	}

	return nil
}

// Get retrieves a user playlist by ID, excluding soft-deleted rows
func (r *UserPlaylistRepository) Get(id string) (*models.UserPlaylist, error) {
	query := `
		SELECT id, user_id, title, description, track_ids, created_at, updated_at
		FROM user_playlists
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update overwrites a user playlist's mutable fields
func (r *UserPlaylistRepository) Update(playlist *models.UserPlaylist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	trackIDs, err := encodeIDs(playlist.TrackIDs)
	if err != nil {
		return err
	}

	query := `
		UPDATE user_playlists
		SET title = ?, description = ?, track_ids = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		playlist.Title,
		playlist.Description,
		trackIDs,
		time.Now(),
		playlist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user playlist: %w", err)
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

// Delete soft-deletes a user playlist by ID
func (r *UserPlaylistRepository) Delete(id string) error {
	query := `
		UPDATE user_playlists
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete user playlist: %w", err)
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

// List retrieves user playlists matching the given criteria, excluding soft-deleted rows
func (r *UserPlaylistRepository) List(criteria map[string]any) ([]*models.UserPlaylist, error) {
	query := `
		SELECT id, user_id, title, description, track_ids, created_at, updated_at
		FROM user_playlists
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if ownerID, ok := criteria["owner_id"].(string); ok && ownerID != "" {
		query += " AND user_id = ?"
		args = append(args, ownerID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*models.UserPlaylist
	for rows.Next() {
		playlist, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// CreateUserPlaylist implements [library.Persistence]
func (r *UserPlaylistRepository) CreateUserPlaylist(ctx context.Context, playlist models.UserPlaylist) error {
	return r.Create(&playlist)
}

// UpdateUserPlaylist implements [library.Persistence] with a partial update.
// Nil patch fields leave the stored value untouched.
func (r *UserPlaylistRepository) UpdateUserPlaylist(ctx context.Context, id string, patch library.UserPlaylistPatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.TrackIDs != nil {
		trackIDs, err := encodeIDs(*patch.TrackIDs)
		if err != nil {
			return err
		}
		sets = append(sets, "track_ids = ?")
		args = append(args, trackIDs)
	}

	query := "UPDATE user_playlists SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = ? AND deleted_at IS NULL"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch user playlist: %w", err)
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

// DeleteUserPlaylist implements [library.Persistence]
func (r *UserPlaylistRepository) DeleteUserPlaylist(ctx context.Context, id string) error {
	return r.Delete(id)
}

// scanOne scans a single [sql.Row] into a [models.UserPlaylist]
func (r *UserPlaylistRepository) scanOne(row *sql.Row) (*models.UserPlaylist, error) {
	playlist := &models.UserPlaylist{}
	var trackIDs string

	err := row.Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Title,
		&playlist.Description,
		&trackIDs,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, shared.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user playlist: %w", err)
	}

	if playlist.TrackIDs, err = decodeIDs(trackIDs); err != nil {
		return nil, err
	}

	return playlist, nil
}

// scanRow scans a row from [sql.Rows] into a [models.UserPlaylist]
func (r *UserPlaylistRepository) scanRow(rows *sql.Rows) (*models.UserPlaylist, error) {
	playlist := &models.UserPlaylist{}
	var trackIDs string

	err := rows.Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Title,
		&playlist.Description,
		&trackIDs,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user playlist: %w", err)
	}

	if playlist.TrackIDs, err = decodeIDs(trackIDs); err != nil {
		return nil, err
	}

	return playlist, nil
}
