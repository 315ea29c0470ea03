// Package server provides HTTP routing, middleware, and JSON API handlers for the catalog service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # API Handlers
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
//   - [MediaHandler] : source URL classification and embed resolution
//   - [CatalogHandler] : browse endpoints for tracks, grouped playlists, videos and news
//   - [QueueHandler] : the shared playback queue (load, next, previous, current)
//   - [LibraryHandler] : personal playlist CRUD for the session user
//
// All handlers speak JSON. Middleware provides request logging via charmbracelet/log
// and token bucket rate limiting via golang.org/x/time/rate.
package server
