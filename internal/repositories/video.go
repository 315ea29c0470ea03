package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// VideoRepository implements models.Repository[*models.Video] for the video archive.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new [models.Video] into the database
func (r *VideoRepository) Create(video *models.Video) error {
	sequence, err := NextSequence(r.db, "videos")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	if video.ID == "" {
		video.ID = shared.GenerateID()
	}

	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO videos (id, sequence, title, description, video_url, thumbnail_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, video.ID, sequence, video.Title, video.Description, video.VideoURL, video.ThumbnailURL, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	return nil
}

// Get retrieves a video by ID, excluding soft-deleted videos
func (r *VideoRepository) Get(id string) (*models.Video, error) {
	query := `
		SELECT id, title, description, video_url, thumbnail_url
		FROM videos
		WHERE id = ? AND deleted_at IS NULL
	`

	video := &models.Video{}
	err := r.db.QueryRow(query, id).Scan(&video.ID, &video.Title, &video.Description, &video.VideoURL, &video.ThumbnailURL)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}

	return video, nil
}

// Update modifies an existing video in the database
func (r *VideoRepository) Update(video *models.Video) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE videos
		SET title = ?, description = ?, video_url = ?, thumbnail_url = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, video.Title, video.Description, video.VideoURL, video.ThumbnailURL, time.Now(), video.ID)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("video not found or already deleted: %s", video.ID)
	}

	return nil
}

// Delete soft-deletes a video by ID
func (r *VideoRepository) Delete(id string) error {
	query := `
		UPDATE videos
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("video not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all videos, excluding soft-deleted videos
func (r *VideoRepository) List(criteria map[string]any) ([]*models.Video, error) {
	query := `
		SELECT id, title, description, video_url, thumbnail_url
		FROM videos
		WHERE deleted_at IS NULL
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []*models.Video
	for rows.Next() {
		video := &models.Video{}
		if err := rows.Scan(&video.ID, &video.Title, &video.Description, &video.VideoURL, &video.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return videos, nil
}
