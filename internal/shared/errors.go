package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Identity errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrUserNotFound     = fmt.Errorf("user not found")

	// Media resolution errors
	ErrEmbedResolution = fmt.Errorf("embed resolution failed")
	ErrNotEmbeddable   = fmt.Errorf("source is not embeddable")

	// Queue errors
	ErrEmptyQueue = fmt.Errorf("nothing to play")

	// Catalog and persistence errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrPersistence      = fmt.Errorf("persistence call failed")

	// Input validation errors
	ErrValidation      = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
