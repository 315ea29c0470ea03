// Package models defines the data model for the TeO Music Studio catalog
// service.
//
// # Catalog entities
//
// [Track], [Playlist], [Video], and [NewsArticle] are read-only catalog
// entities owned by the content pipeline; the core only reads them. A
// [Playlist.TrackIDs] sequence may reference tracks absent from the current
// catalog snapshot (deleted tracks); consumers drop unresolved ids instead
// of failing.
//
// # User entities
//
// [User] carries the authenticated account, its subscription [Tier], and the
// personal [UserPlaylist] collection. User playlists are the only mutable
// entities in the model: they are created, renamed, and pruned through the
// library editor and persisted by the user-playlist repository.
//
// # Interfaces
//
// [Model] and [Repository] define the persistence contract implemented by
// the sqlite repositories.
package models
