package catalog

import (
	"github.com/teostudio/catalog/internal/models"
)

// Group is one rendered playlist section: a category and its playlists in
// input order.
type Group struct {
	Category  models.Category   `json:"category"`
	Playlists []models.Playlist `json:"playlists"`
}

// GroupByCategory buckets playlists by category for display.
//
// The result follows categoryOrder exactly, regardless of input order.
// Playlists whose category is absent from categoryOrder land in a terminal
// [models.CategoryOther] bucket after all ordered sections. Buckets that end
// up empty are excluded entirely; they are recomputed from source on every
// query, so nothing is discarded permanently.
func GroupByCategory(playlists []models.Playlist, categoryOrder []models.Category) []Group {
	buckets := make(map[models.Category][]models.Playlist, len(categoryOrder))
	ordered := make(map[models.Category]bool, len(categoryOrder))
	for _, category := range categoryOrder {
		buckets[category] = nil
		ordered[category] = true
	}

	var other []models.Playlist
	for _, p := range playlists {
		if ordered[p.Category] {
			buckets[p.Category] = append(buckets[p.Category], p)
		} else {
			other = append(other, p)
		}
	}

	groups := make([]Group, 0, len(categoryOrder)+1)
	for _, category := range categoryOrder {
		if len(buckets[category]) == 0 {
			continue
		}
		groups = append(groups, Group{Category: category, Playlists: buckets[category]})
	}

	if len(other) > 0 {
		groups = append(groups, Group{Category: models.CategoryOther, Playlists: other})
	}

	return groups
}
