// Package queue owns the session's playback queue: the ordered list of
// tracks currently queued and the cursor into it.
//
// A session holds exactly one [Queue]; UI surfaces share it and loading races
// resolve as last writer wins, reflecting the most recent user intent. The
// queue lives only in memory and is never persisted.
package queue

import (
	"fmt"
	"sync"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// Queue is the shared playback queue. The zero cursor invariant holds
// whenever items is non-empty: 0 <= cursor < len(items). An empty queue has
// no cursor.
type Queue struct {
	mu     sync.Mutex
	items  []models.Track
	cursor int
}

// New creates an empty Queue.
func New() *Queue {
	return &Queue{cursor: -1}
}

// LoadAndPlay replaces the queue wholesale with tracks and moves the cursor
// to the first item. A previously loaded queue is superseded without merge or
// confirmation.
//
// Loading zero tracks empties the queue and returns [shared.ErrEmptyQueue]:
// a reported no-op for the caller to surface, not a hard failure.
func (q *Queue) LoadAndPlay(tracks []models.Track) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(tracks) == 0 {
		q.items = nil
		q.cursor = -1
		return fmt.Errorf("%w: no playable tracks", shared.ErrEmptyQueue)
	}

	q.items = make([]models.Track, len(tracks))
	copy(q.items, tracks)
	q.cursor = 0
	return nil
}

// Advance moves the cursor to the next track. At the last item the queue
// stops: no wraparound, further calls are no-ops.
func (q *Queue) Advance() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cursor >= 0 && q.cursor+1 < len(q.items) {
		q.cursor++
	}
}

// Retreat moves the cursor to the previous track, flooring at the first
// item.
func (q *Queue) Retreat() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cursor > 0 {
		q.cursor--
	}
}

// Current returns the track at the cursor, or false if the queue is empty.
func (q *Queue) Current() (models.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cursor < 0 || q.cursor >= len(q.items) {
		return models.Track{}, false
	}
	return q.items[q.cursor], true
}

// Position returns the zero-based cursor index, or -1 when the queue is
// empty.
func (q *Queue) Position() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.cursor
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Tracks returns a copy of the queued tracks in playback order.
func (q *Queue) Tracks() []models.Track {
	q.mu.Lock()
	defer q.mu.Unlock()

	tracks := make([]models.Track, len(q.items))
	copy(tracks, q.items)
	return tracks
}
