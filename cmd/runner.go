package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/repositories"
	"github.com/teostudio/catalog/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// reloadConfig replaces the runner's config from the given path when the file exists.
func (r *Runner) reloadConfig(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, keeping current settings", "path", path, "error", err)
		return
	}
	r.config = config
}

// openDB opens the configured SQLite database.
func (r *Runner) openDB() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return db, nil
}

// classifier builds a classifier from the configured trusted prefixes.
func (r *Runner) classifier() *media.Classifier {
	return media.NewClassifier(r.config.Media.TrustedPrefixes...)
}

// sessionIdentity resolves the configured session user from the user table.
// No email configured, or an email with no matching row, means signed out.
// There is no credential handling here.
type sessionIdentity struct {
	email string
	users *repositories.UserRepository
}

func (s *sessionIdentity) CurrentUser() (*models.User, bool) {
	if s.email == "" {
		return nil, false
	}
	user, err := s.users.GetByEmail(s.email)
	if err != nil {
		return nil, false
	}
	return user, true
}

var _ library.Identity = (*sessionIdentity)(nil)

// sessionEditor loads the session user and their playlists into an editor.
func (r *Runner) sessionEditor(db *sql.DB) (*library.Editor, error) {
	identity := &sessionIdentity{
		email: r.config.Session.UserEmail,
		users: repositories.NewUserRepository(db),
	}
	return r.editorFor(identity, db)
}

// editorFor builds an editor for whoever the identity says is signed in.
func (r *Runner) editorFor(identity library.Identity, db *sql.DB) (*library.Editor, error) {
	user, ok := identity.CurrentUser()
	if !ok {
		return nil, fmt.Errorf("%w: no session user", shared.ErrNotAuthenticated)
	}

	owned, err := repositories.NewUserPlaylistRepository(db).List(map[string]any{"owner_id": user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user playlists: %w", err)
	}
	for _, playlist := range owned {
		user.Playlists = append(user.Playlists, *playlist)
	}

	store := repositories.NewUserPlaylistRepository(db)
	return library.NewEditor(*user, store, &printNotifier{out: r.output}, r.logger), nil
}

// printNotifier renders notices as plain CLI lines.
type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Success(message string) {
	fmt.Fprintf(n.out, "✓ %s\n", message)
}

func (n *printNotifier) Error(message string) {
	fmt.Fprintf(n.out, "✗ %s\n", message)
}

var _ library.Notifier = (*printNotifier)(nil)

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// playlistTitle resolves a playlist id to its title for display, falling
// back to the id itself.
func playlistTitle(playlists []models.UserPlaylist, id string) string {
	for _, playlist := range playlists {
		if playlist.ID == id {
			return playlist.Title
		}
	}
	return id
}
