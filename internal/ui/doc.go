// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and playing the catalog:
//  1. [PlaylistListView] : Browse curated playlist sections
//  2. [TrackListView] : Preview a playlist's resolved tracks
//  3. [PlayerView] : Step through the playback queue
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Playback state lives in the shared queue package, so the player view renders exactly what the queue reports.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, n/p, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
