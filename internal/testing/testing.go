// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/models"
)

// MockNotifier records every notice it receives. Safe for concurrent use.
type MockNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *MockNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, message)
}

func (n *MockNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, message)
}

// MockPersistence is a test double for [library.Persistence]. It records
// calls and can be told to fail. Safe for concurrent use; read the recorded
// fields only after the calls under test have finished.
type MockPersistence struct {
	mu      sync.Mutex
	Created []models.UserPlaylist
	Updated map[string][]library.UserPlaylistPatch
	Deleted []string
	Fail    bool
}

func NewMockPersistence() *MockPersistence {
	return &MockPersistence{Updated: map[string][]library.UserPlaylistPatch{}}
}

func (p *MockPersistence) CreateUserPlaylist(ctx context.Context, playlist models.UserPlaylist) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail {
		return errors.New("persistence unavailable")
	}
	p.Created = append(p.Created, playlist)
	return nil
}

func (p *MockPersistence) UpdateUserPlaylist(ctx context.Context, id string, patch library.UserPlaylistPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail {
		return errors.New("persistence unavailable")
	}
	p.Updated[id] = append(p.Updated[id], patch)
	return nil
}

func (p *MockPersistence) DeleteUserPlaylist(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail {
		return errors.New("persistence unavailable")
	}
	p.Deleted = append(p.Deleted, id)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// StaticSource is a test double for [catalog.Source] backed by fixed maps.
type StaticSource struct {
	TrackSet    map[string]models.Track
	PlaylistSet []models.Playlist
	VideoSet    []models.Video
	NewsSet     []models.NewsArticle
	Err         error
}

func (s *StaticSource) Tracks(ctx context.Context) (map[string]models.Track, error) {
	return s.TrackSet, s.Err
}

func (s *StaticSource) Playlists(ctx context.Context) ([]models.Playlist, error) {
	return s.PlaylistSet, s.Err
}

func (s *StaticSource) Videos(ctx context.Context) ([]models.Video, error) {
	return s.VideoSet, s.Err
}

func (s *StaticSource) News(ctx context.Context) ([]models.NewsArticle, error) {
	return s.NewsSet, s.Err
}

// MockIdentity is a test double for [library.Identity].
type MockIdentity struct {
	User   *models.User
	Signed bool
}

func (m *MockIdentity) CurrentUser() (*models.User, bool) {
	return m.User, m.Signed
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
