package models

import (
	"fmt"
	"strings"
	"time"
)

// Model defines the base interface for all persistent models in the catalog service.
type Model interface {
	Validate() error // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Category is the curated playlist section a playlist is filed under.
type Category string

const (
	CategoryOfficial       Category = "official"
	CategoryCuratorSelects Category = "curator-selects"
	CategoryShowcase       Category = "showcase"
	CategoryOccasional     Category = "occasional"
	CategoryUserPlaylists  Category = "user-playlists"

	// CategoryOther is the terminal fallthrough bucket for playlists whose
	// category is not part of the configured display order.
	CategoryOther Category = "other"
)

// DefaultCategoryOrder is the section order used by the playlists page.
func DefaultCategoryOrder() []Category {
	return []Category{
		CategoryOfficial,
		CategoryCuratorSelects,
		CategoryShowcase,
		CategoryOccasional,
		CategoryUserPlaylists,
	}
}

// Tier is a subscription tier. Upgrades are handled manually outside of this
// service; the tier is display data here.
type Tier string

const (
	TierFree    Tier = "Free"
	TierPremium Tier = "Premium"
	TierVIP     Tier = "VIP"
)

// Track is a catalog track. SourceURL is the canonical audio location,
// immutable once ingested.
type Track struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ArtistName    string `json:"artistName"`
	SourceURL     string `json:"sourceUrl"`
	CoverImageURL string `json:"coverImageUrl"`
}

// Validate checks required track fields.
func (t Track) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("track id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track title is required")
	}
	return nil
}

// Playlist is a curated catalog playlist. TrackIDs is the playback order;
// duplicates are permitted and ids may not resolve against the current
// catalog snapshot.
type Playlist struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CoverImageURL string   `json:"coverImageUrl"`
	Category      Category `json:"category"`
	TrackIDs      []string `json:"trackIds"`
	ExternalURL   string   `json:"externalUrl,omitempty"`
}

// Validate checks required playlist fields.
func (p Playlist) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("playlist id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("playlist title is required")
	}
	return nil
}

// UserPlaylist is a personal playlist owned by exactly one user. Its track
// list is mutable by that user only; lifetime is bound to the account.
type UserPlaylist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TrackIDs    []string  `json:"trackIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks required user playlist fields. Title blankness is enforced
// at creation by the editor, not here: an existing playlist may be renamed to
// an empty title through edit-in-place.
func (p UserPlaylist) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("user playlist id is required")
	}
	if p.OwnerID == "" {
		return fmt.Errorf("user playlist owner is required")
	}
	return nil
}

// Video is an official video catalog entry.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Validate checks required video fields.
func (v Video) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("video id is required")
	}
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Errorf("video title is required")
	}
	return nil
}

// NewsArticle is a news archive entry.
type NewsArticle struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Summary string    `json:"summary"`
	Body    string    `json:"body"`
}

// Validate checks required article fields.
func (a NewsArticle) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("article id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("article title is required")
	}
	return nil
}

// User is an authenticated account as exposed by the identity collaborator.
type User struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Tier      Tier           `json:"tier"`
	Playlists []UserPlaylist `json:"playlists,omitempty"`
}

// Validate checks required user fields.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("user email %q is invalid", u.Email)
	}
	return nil
}
