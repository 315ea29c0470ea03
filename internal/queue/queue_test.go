package queue

import (
	"errors"
	"testing"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

func tracks(ids ...string) []models.Track {
	out := make([]models.Track, len(ids))
	for i, id := range ids {
		out[i] = models.Track{ID: id, Title: "Track " + id}
	}
	return out
}

func TestQueue_LoadAndPlay(t *testing.T) {
	t.Run("empty load reports and stays empty", func(t *testing.T) {
		q := New()

		err := q.LoadAndPlay(nil)
		if !errors.Is(err, shared.ErrEmptyQueue) {
			t.Fatalf("expected ErrEmptyQueue, got %v", err)
		}
		if _, ok := q.Current(); ok {
			t.Error("empty queue should have no current track")
		}
		if q.Position() != -1 {
			t.Errorf("expected cursor -1, got %d", q.Position())
		}
	})

	t.Run("load sets cursor to first track", func(t *testing.T) {
		q := New()

		if err := q.LoadAndPlay(tracks("t1", "t2", "t3")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		current, ok := q.Current()
		if !ok || current.ID != "t1" {
			t.Errorf("expected current t1, got %v (ok=%v)", current.ID, ok)
		}
		if q.Len() != 3 {
			t.Errorf("expected 3 items, got %d", q.Len())
		}
	})

	t.Run("last writer wins", func(t *testing.T) {
		q := New()

		if err := q.LoadAndPlay(tracks("t1", "t2")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q.Advance()

		if err := q.LoadAndPlay(tracks("x1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		current, _ := q.Current()
		if current.ID != "x1" {
			t.Errorf("expected x1 after replacement, got %s", current.ID)
		}
		if q.Len() != 1 {
			t.Errorf("expected queue length 1, got %d", q.Len())
		}
	})

	t.Run("empty load clears a loaded queue", func(t *testing.T) {
		q := New()

		if err := q.LoadAndPlay(tracks("t1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := q.LoadAndPlay(nil); !errors.Is(err, shared.ErrEmptyQueue) {
			t.Fatalf("expected ErrEmptyQueue, got %v", err)
		}
		if q.Len() != 0 {
			t.Errorf("expected cleared queue, got %d items", q.Len())
		}
	})
}

func TestQueue_AdvanceRetreat(t *testing.T) {
	t.Run("advance stops at the last track", func(t *testing.T) {
		q := New()
		if err := q.LoadAndPlay(tracks("t1", "t2")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		q.Advance()
		current, _ := q.Current()
		if current.ID != "t2" {
			t.Fatalf("expected t2, got %s", current.ID)
		}

		// No overrun past the end.
		q.Advance()
		current, _ = q.Current()
		if current.ID != "t2" {
			t.Errorf("expected cursor to stay on t2, got %s", current.ID)
		}
	})

	t.Run("retreat floors at the first track", func(t *testing.T) {
		q := New()
		if err := q.LoadAndPlay(tracks("t1", "t2")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		q.Retreat()
		current, _ := q.Current()
		if current.ID != "t1" {
			t.Errorf("expected cursor to stay on t1, got %s", current.ID)
		}

		q.Advance()
		q.Retreat()
		current, _ = q.Current()
		if current.ID != "t1" {
			t.Errorf("expected t1 after round trip, got %s", current.ID)
		}
	})

	t.Run("navigation on empty queue is a no-op", func(t *testing.T) {
		q := New()
		q.Advance()
		q.Retreat()
		if _, ok := q.Current(); ok {
			t.Error("empty queue should have no current track")
		}
	})
}

func TestQueue_Tracks(t *testing.T) {
	q := New()
	if err := q.LoadAndPlay(tracks("t1", "t2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := q.Tracks()
	snapshot[0].ID = "mutated"

	current, _ := q.Current()
	if current.ID != "t1" {
		t.Error("snapshot mutation should not affect the queue")
	}
}
