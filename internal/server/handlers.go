package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/library"
	"github.com/teostudio/catalog/internal/media"
	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/queue"
	"github.com/teostudio/catalog/internal/shared"
)

// MediaHandler serves source URL classification and embed resolution.
type MediaHandler struct {
	classifier *media.Classifier
}

// NewMediaHandler creates a MediaHandler over the given classifier.
func NewMediaHandler(classifier *media.Classifier) *MediaHandler {
	return &MediaHandler{classifier: classifier}
}

// Routes implements [Handler]
func (h *MediaHandler) Routes() []string {
	return []string{"/api/media/classify", "/api/media/embed"}
}

type classifyResponse struct {
	Kind       string `json:"kind"`
	VideoID    string `json:"videoId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty"`
	URL        string `json:"url"`
	Playable   bool   `json:"playable"`
}

func (h *MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	switch r.URL.Path {
	case "/api/media/classify":
		c := h.classifier.Classify(raw)
		writeJSON(w, http.StatusOK, classifyResponse{
			Kind:       c.Kind.String(),
			VideoID:    c.VideoID,
			PlaylistID: c.PlaylistID,
			URL:        c.URL,
			Playable:   c.Kind == media.KindDirectAudio,
		})

	case "/api/media/embed":
		opts := media.EmbedOptions{Autoplay: r.URL.Query().Get("autoplay") == "1"}
		embed, err := h.classifier.EmbedURL(raw, opts)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, shared.ErrEmbedResolution) {
				status = http.StatusBadRequest
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"embedUrl": embed})

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// CatalogHandler serves read-only browse endpoints over a [catalog.Source].
type CatalogHandler struct {
	source        catalog.Source
	categoryOrder []models.Category
}

// NewCatalogHandler creates a CatalogHandler. A nil category order falls back
// to the default section order.
func NewCatalogHandler(source catalog.Source, categoryOrder []models.Category) *CatalogHandler {
	if categoryOrder == nil {
		categoryOrder = models.DefaultCategoryOrder()
	}
	return &CatalogHandler{source: source, categoryOrder: categoryOrder}
}

// Routes implements [Handler]
func (h *CatalogHandler) Routes() []string {
	return []string{"/api/tracks", "/api/playlists", "/api/videos", "/api/news"}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()

	switch r.URL.Path {
	case "/api/tracks":
		tracks, err := h.source.Tracks(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, tracks)

	case "/api/playlists":
		playlists, err := h.source.Playlists(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, catalog.GroupByCategory(playlists, h.categoryOrder))

	case "/api/videos":
		videos, err := h.source.Videos(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, videos)

	case "/api/news":
		news, err := h.source.News(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, news)

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// QueueHandler serves the shared playback queue.
type QueueHandler struct {
	queue      *queue.Queue
	source     catalog.Source
	classifier *media.Classifier
}

// NewQueueHandler creates a QueueHandler over the shared queue and catalog source.
func NewQueueHandler(q *queue.Queue, source catalog.Source, classifier *media.Classifier) *QueueHandler {
	return &QueueHandler{queue: q, source: source, classifier: classifier}
}

// Routes implements [Handler]
func (h *QueueHandler) Routes() []string {
	return []string{"/api/queue", "/api/queue/load", "/api/queue/next", "/api/queue/previous"}
}

type queueState struct {
	Position int           `json:"position"`
	Length   int           `json:"length"`
	Current  *models.Track `json:"current,omitempty"`
}

func (h *QueueHandler) state() queueState {
	state := queueState{Position: h.queue.Position(), Length: h.queue.Len()}
	if current, ok := h.queue.Current(); ok {
		state.Current = &current
	}
	return state
}

func (h *QueueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/queue":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, h.state())

	case "/api/queue/load":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.load(w, r)

	case "/api/queue/next":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.queue.Advance()
		writeJSON(w, http.StatusOK, h.state())

	case "/api/queue/previous":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.queue.Retreat()
		writeJSON(w, http.StatusOK, h.state())

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

type loadRequest struct {
	TrackIDs []string `json:"trackIds"`
}

// load replaces the queue with the playable subset of the posted track ids.
func (h *QueueHandler) load(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.source.Tracks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	playable := h.classifier.PlayableTracks(req.TrackIDs, snapshot)
	if err := h.queue.LoadAndPlay(playable); err != nil {
		if errors.Is(err, shared.ErrEmptyQueue) {
			writeError(w, http.StatusUnprocessableEntity, "no playable tracks in selection")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.state())
}

// LibraryHandler serves personal playlist CRUD for the session user.
type LibraryHandler struct {
	editor *library.Editor
}

// NewLibraryHandler creates a LibraryHandler over the session user's editor.
func NewLibraryHandler(editor *library.Editor) *LibraryHandler {
	return &LibraryHandler{editor: editor}
}

// Routes implements [Handler]
func (h *LibraryHandler) Routes() []string {
	return []string{"/api/library/playlists", "/api/library/playlists/"}
}

type createPlaylistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type renamePlaylistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *LibraryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.editor == nil {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}

	if r.URL.Path == "/api/library/playlists" {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, h.editor.Playlists())
		case http.MethodPost:
			h.create(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/library/playlists/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if len(parts) == 2 && parts[1] == "tracks" {
		h.tracks(w, r, id)
		return
	}
	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		playlist, ok := h.editor.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "playlist not found")
			return
		}
		writeJSON(w, http.StatusOK, playlist)

	case http.MethodPatch:
		h.rename(w, r, id)

	case http.MethodDelete:
		// The confirmation step lives in the client; reaching this
		// endpoint is the confirmation.
		confirm := func(models.UserPlaylist) bool { return true }
		if err := h.editor.Delete(r.Context(), id, confirm); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *LibraryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	playlist, err := h.editor.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, shared.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (h *LibraryHandler) rename(w http.ResponseWriter, r *http.Request, id string) {
	var req renamePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.editor.Rename(r.Context(), id, req.Title, req.Description); err != nil {
		if errors.Is(err, shared.ErrPlaylistNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	playlist, _ := h.editor.Get(id)
	writeJSON(w, http.StatusOK, playlist)
}

type trackRequest struct {
	TrackID string `json:"trackId"`
}

// tracks handles membership changes: POST adds a track, DELETE removes every
// occurrence of one.
func (h *LibraryHandler) tracks(w http.ResponseWriter, r *http.Request, id string) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TrackID == "" {
		writeError(w, http.StatusBadRequest, "trackId is required")
		return
	}

	var err error
	switch r.Method {
	case http.MethodPost:
		err = h.editor.AddTrack(r.Context(), id, req.TrackID)
	case http.MethodDelete:
		err = h.editor.RemoveTrack(r.Context(), id, req.TrackID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err != nil {
		if errors.Is(err, shared.ErrPlaylistNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	playlist, _ := h.editor.Get(id)
	writeJSON(w, http.StatusOK, playlist)
}
