package tasks

import (
	"context"
	"fmt"

	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/repositories"
)

// Audit classifies every track's source URL and reports how the catalog
// breaks down by media kind. Tracks whose source cannot play in the app
// player are listed by id so editors can fix them.
func (e *MaintenanceEngine) Audit(ctx context.Context, progress chan<- ProgressUpdate) (*AuditResult, error) {
	repo := repositories.NewTrackRepository(e.db)

	tracks, err := repo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks for audit: %w", err)
	}

	result := &AuditResult{
		Total:  len(tracks),
		Counts: map[media.Kind]int{},
	}

	e.sendProgress(progress, auditStartUpdate(len(tracks)))

	for i, track := range tracks {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		classification := e.classifier.Classify(track.SourceURL)
		result.Counts[classification.Kind]++

		if e.classifier.IsPlayableInApp(*track) {
			result.Playable++
		} else {
			result.Unplayable = append(result.Unplayable, track.ID)
		}

		e.sendProgress(progress, auditTrackUpdate(i+1, len(tracks), track.Title, classification.Kind.String()))
	}

	return result, nil
}
