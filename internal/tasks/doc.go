// Package tasks implements long-running catalog maintenance operations.
//
// The core abstraction is [CatalogEngine], which orchestrates catalog seeding
// from JSON snapshots and source URL audits. Operations emit progress updates
// via channels for non-blocking status reporting to CLI/UI layers.
//
// Key Implementations:
//   - [MaintenanceEngine] : Seed ingestion with a rate-limited worker pool, plus source audits
//   - [ProgressUpdate] / [Phase] : progress events consumed by the CLI and TUI
//
// Progress channels are never required; a nil channel disables reporting and
// a full channel drops updates rather than blocking the operation.
package tasks
