// Package library implements the user playlist editor.
//
// All mutations are optimistic: local state updates first and remains the
// user's visible truth even when the persistence collaborator fails. A
// failed persistence call surfaces an error notice and is never rolled back;
// reconciliation is last local write wins.
package library

import (
	"context"

	"github.com/teostudio/catalog/internal/models"
)

// Notifier is the UI notification channel collaborator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Identity is the identity collaborator: it exposes the signed-in user, if
// any.
type Identity interface {
	CurrentUser() (*models.User, bool)
}

// UserPlaylistPatch is a partial update to a user playlist. Nil fields are
// left untouched.
type UserPlaylistPatch struct {
	Title       *string
	Description *string
	TrackIDs    *[]string
}

// Persistence is the user-playlist persistence collaborator. Calls may
// resolve asynchronously on the far side; the editor treats them as
// fire-and-forget and defines no retry policy.
type Persistence interface {
	CreateUserPlaylist(ctx context.Context, playlist models.UserPlaylist) error
	UpdateUserPlaylist(ctx context.Context, id string, patch UserPlaylistPatch) error
	DeleteUserPlaylist(ctx context.Context, id string) error
}
