// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [UserRepository] : User account persistence with email-based lookups
//   - [TrackRepository] : Catalog track persistence keyed by catalog id
//   - [PlaylistRepository] : Curated playlist persistence with category queries
//   - [UserPlaylistRepository] : Personal playlist persistence, also serving as the editor's persistence collaborator
//   - [VideoRepository] / [NewsRepository] : Video and news archive persistence
//
// Sequence numbers provide stable, human-readable ordering (e.g., track #42, playlist #15) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table counters in the sequences table.
package repositories
