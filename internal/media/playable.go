package media

import (
	"github.com/teostudio/catalog/internal/models"
)

// IsPlayableInApp reports whether a track can be played directly inside the
// application: true iff its source URL classifies as direct audio.
func (c *Classifier) IsPlayableInApp(t models.Track) bool {
	return c.Classify(t.SourceURL).Kind == KindDirectAudio
}

// IsPlayableInApp evaluates t with the default classifier.
func IsPlayableInApp(t models.Track) bool {
	return defaultClassifier.IsPlayableInApp(t)
}

// PlayableTracks resolves trackIDs against the catalog snapshot and returns
// the in-app playable subset in original order. Ids that don't resolve to a
// known track are dropped silently.
func (c *Classifier) PlayableTracks(trackIDs []string, catalog map[string]models.Track) []models.Track {
	playable := make([]models.Track, 0, len(trackIDs))
	for _, id := range trackIDs {
		track, ok := catalog[id]
		if !ok {
			continue
		}
		if c.IsPlayableInApp(track) {
			playable = append(playable, track)
		}
	}
	return playable
}

// PlayableTracks resolves trackIDs with the default classifier.
func PlayableTracks(trackIDs []string, catalog map[string]models.Track) []models.Track {
	return defaultClassifier.PlayableTracks(trackIDs, catalog)
}

// ResolveTracks maps trackIDs to tracks in original order, dropping ids
// absent from the catalog snapshot. Unlike [Classifier.PlayableTracks] it
// performs no playability filtering.
func ResolveTracks(trackIDs []string, catalog map[string]models.Track) []models.Track {
	tracks := make([]models.Track, 0, len(trackIDs))
	for _, id := range trackIDs {
		if track, ok := catalog[id]; ok {
			tracks = append(tracks, track)
		}
	}
	return tracks
}
