package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/queue"
	th "github.com/teostudio/catalog/internal/testing"
)

func testSource() *th.StaticSource {
	return &th.StaticSource{
		TrackSet: map[string]models.Track{
			"t1": {ID: "t1", Title: "Golden Hour", SourceURL: "https://storage.googleapis.com/teo/a.mp3"},
			"t2": {ID: "t2", Title: "Night Drive", SourceURL: "https://youtu.be/dQw4w9WgXcQ"},
		},
		PlaylistSet: []models.Playlist{
			{ID: "pl1", Title: "Official", Category: models.CategoryOfficial},
			{ID: "pl2", Title: "Mystery", Category: "seasonal"},
		},
	}
}

func TestMediaHandler(t *testing.T) {
	handler := NewMediaHandler(media.NewClassifier())

	t.Run("classify identifies a watch URL", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/media/classify?url=https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Kind != "youtube" || resp.VideoID != "dQw4w9WgXcQ" {
			t.Errorf("got kind=%s videoId=%s", resp.Kind, resp.VideoID)
		}
	})

	t.Run("embed resolves with autoplay", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/media/embed?url=https://youtu.be/dQw4w9WgXcQ&autoplay=1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}

		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		want := "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&autoplay=1"
		if resp["embedUrl"] != want {
			t.Errorf("embedUrl = %s, want %s", resp["embedUrl"], want)
		}
	})

	t.Run("direct audio is not embeddable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/media/embed?url=https://storage.googleapis.com/teo/a.mp3", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("missing url is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/media/classify", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCatalogHandler(t *testing.T) {
	handler := NewCatalogHandler(testSource(), nil)

	t.Run("playlists are grouped with Other last", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/playlists", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var groups []struct {
			Category  models.Category   `json:"category"`
			Playlists []models.Playlist `json:"playlists"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&groups); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Category != models.CategoryOfficial || groups[1].Category != models.CategoryOther {
			t.Errorf("unexpected group order: %v then %v", groups[0].Category, groups[1].Category)
		}
	})

	t.Run("tracks snapshot is keyed by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tracks", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var tracks map[string]models.Track
		if err := json.NewDecoder(rec.Body).Decode(&tracks); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if tracks["t1"].Title != "Golden Hour" {
			t.Errorf("unexpected snapshot: %v", tracks)
		}
	})

	t.Run("writes are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/tracks", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestQueueHandler(t *testing.T) {
	t.Run("load filters to playable tracks then navigates", func(t *testing.T) {
		handler := NewQueueHandler(queue.New(), testSource(), media.NewClassifier())

		body := bytes.NewBufferString(`{"trackIds": ["t2", "t1"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/queue/load", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}

		var state struct {
			Position int           `json:"position"`
			Length   int           `json:"length"`
			Current  *models.Track `json:"current"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		// t2 is a video source, so only t1 survives the playability filter.
		if state.Length != 1 || state.Current == nil || state.Current.ID != "t1" {
			t.Errorf("unexpected state: %+v", state)
		}

		req = httptest.NewRequest(http.MethodPost, "/api/queue/next", nil)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if state.Position != 0 {
			t.Errorf("advance past the end should clamp, got position %d", state.Position)
		}
	})

	t.Run("loading only unplayable tracks is rejected", func(t *testing.T) {
		handler := NewQueueHandler(queue.New(), testSource(), media.NewClassifier())

		body := bytes.NewBufferString(`{"trackIds": ["t2"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/queue/load", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestLibraryHandler(t *testing.T) {
	newHandler := func() (*LibraryHandler, *th.MockPersistence) {
		owner := models.User{ID: "user-1", Email: "teo@example.com"}
		store := th.NewMockPersistence()
		editor := library.NewEditor(owner, store, &th.MockNotifier{}, log.New(io.Discard))
		return NewLibraryHandler(editor), store
	}

	t.Run("create then fetch", func(t *testing.T) {
		handler, _ := newHandler()

		body := bytes.NewBufferString(`{"title": "Morning Mix"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/library/playlists", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
		}

		var playlist models.UserPlaylist
		if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		req = httptest.NewRequest(http.MethodGet, "/api/library/playlists/"+playlist.ID, nil)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		handler, _ := newHandler()

		body := bytes.NewBufferString(`{"title": "  "}`)
		req := httptest.NewRequest(http.MethodPost, "/api/library/playlists", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("track membership round-trip", func(t *testing.T) {
		handler, _ := newHandler()

		body := bytes.NewBufferString(`{"title": "Mix"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/library/playlists", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var playlist models.UserPlaylist
		if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		addBody := bytes.NewBufferString(`{"trackId": "t1"}`)
		req = httptest.NewRequest(http.MethodPost, "/api/library/playlists/"+playlist.ID+"/tracks", addBody)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(playlist.TrackIDs) != 1 {
			t.Fatalf("tracks = %v, want one entry", playlist.TrackIDs)
		}

		delBody := bytes.NewBufferString(`{"trackId": "t1"}`)
		req = httptest.NewRequest(http.MethodDelete, "/api/library/playlists/"+playlist.ID+"/tracks", delBody)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(playlist.TrackIDs) != 0 {
			t.Errorf("tracks = %v, want empty", playlist.TrackIDs)
		}
	})

	t.Run("delete persists", func(t *testing.T) {
		handler, store := newHandler()

		body := bytes.NewBufferString(`{"title": "Doomed"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/library/playlists", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var playlist models.UserPlaylist
		if err := json.NewDecoder(rec.Body).Decode(&playlist); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		req = httptest.NewRequest(http.MethodDelete, "/api/library/playlists/"+playlist.ID, nil)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if len(store.Deleted) != 1 {
			t.Errorf("persisted deletes = %v, want one", store.Deleted)
		}
	})

	t.Run("nil editor means no session", func(t *testing.T) {
		handler := NewLibraryHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/library/playlists", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestRouterMiddleware(t *testing.T) {
	t.Run("rate limit returns 429 once exhausted", func(t *testing.T) {
		router := NewBasicRouter()
		router.Use(RateLimitMiddleware(0, 2))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		statuses := []int{}
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
			statuses = append(statuses, rec.Code)
		}

		if statuses[0] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
			t.Errorf("unexpected statuses: %v", statuses)
		}
	})

	t.Run("method filtering", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("logging middleware passes requests through", func(t *testing.T) {
		router := NewBasicRouter()
		router.Use(LoggingMiddleware(log.New(io.Discard)))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("status = %d, want 418", rec.Code)
		}
	})
}
