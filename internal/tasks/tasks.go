package tasks

import (
	"context"
	"database/sql"

	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
)

// SeedFile is the JSON snapshot format consumed by Seed.
type SeedFile struct {
	Tracks    []models.Track       `json:"tracks"`
	Playlists []models.Playlist    `json:"playlists"`
	Videos    []models.Video       `json:"videos"`
	News      []models.NewsArticle `json:"newsArticles"`
	Users     []models.User        `json:"users"`
}

// ItemResult records the outcome of ingesting a single seed item.
type ItemResult struct {
	ID      string // Item id, when known
	Title   string // Display title for reporting
	Success bool
	Error   error
}

// SeedResult contains all data from a full seed run.
type SeedResult struct {
	TotalTracks    int          // Tracks present in the seed file
	InsertedTracks int          // Tracks successfully inserted
	FailedTracks   int          // Tracks that failed validation or insert
	Playlists      int          // Curated playlists inserted
	Videos         int          // Videos inserted
	News           int          // News articles inserted
	Users          int          // User accounts inserted
	Failures       []ItemResult // Per-item failures across all sections
}

// AuditResult summarizes source URL classification across the track catalog.
type AuditResult struct {
	Total      int                // Tracks examined
	Counts     map[media.Kind]int // Tracks per classification kind
	Playable   int                // Tracks playable in the app player
	Unplayable []string           // IDs of tracks that cannot play in-app
}

// CatalogEngine defines catalog maintenance operations.
type CatalogEngine interface {
	// Seed ingests a JSON catalog snapshot into the database using a
	// rate-limited worker pool.
	Seed(ctx context.Context, progress chan<- ProgressUpdate, path string, opts SeedOpts) (*SeedResult, error)

	// Audit classifies every track's source URL and reports per-kind counts.
	Audit(ctx context.Context, progress chan<- ProgressUpdate) (*AuditResult, error)
}

// MaintenanceEngine implements CatalogEngine over a SQLite database.
type MaintenanceEngine struct {
	db         *sql.DB
	classifier *media.Classifier
}

// NewMaintenanceEngine creates a MaintenanceEngine with the provided database
// connection and classifier.
func NewMaintenanceEngine(db *sql.DB, classifier *media.Classifier) *MaintenanceEngine {
	return &MaintenanceEngine{db: db, classifier: classifier}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *MaintenanceEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
