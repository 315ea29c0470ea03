package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ReadSeed Phase = iota
	SeedTracks
	SeedPlaylists
	SeedVideos
	SeedNews
	SeedUsers
	AuditTracks
)

func (p Phase) String() string {
	switch p {
	case ReadSeed:
		return "read_seed"
	case SeedTracks:
		return "seed_tracks"
	case SeedPlaylists:
		return "seed_playlists"
	case SeedVideos:
		return "seed_videos"
	case SeedNews:
		return "seed_news"
	case SeedUsers:
		return "seed_users"
	case AuditTracks:
		return "audit_tracks"
	default:
		return ""
	}
}

func readSeedUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadSeed,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading seed file (%s)...", path),
	}
}

func seedTrackUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SeedTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, title),
	}
}

func seedSectionUpdate(phase Phase, step, total int, label string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Inserting %s...", label),
	}
}

func auditStartUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AuditTracks,
		Step:    0,
		Total:   total,
		Message: "Classifying track sources...",
	}
}

func auditTrackUpdate(step, total int, title, kind string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AuditTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s: %s", step, total, title, kind),
	}
}
