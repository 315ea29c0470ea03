package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/queue"
	"github.com/teostudio/catalog/internal/server"
	"github.com/teostudio/catalog/internal/shared"
)

// Serve runs the catalog JSON API server until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	host := r.config.Server.Host
	if cmd.IsSet("host") {
		host = cmd.String("host")
	}
	port := r.config.Server.Port
	if cmd.IsSet("port") {
		port = cmd.Int("port")
	}

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	store := catalog.NewStore(db)
	classifier := r.classifier()

	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger))
	if r.config.Server.RateLimit > 0 {
		router.Use(server.RateLimitMiddleware(r.config.Server.RateLimit, int(r.config.Server.RateLimit)))
	}

	router.Handler(server.NewMediaHandler(classifier))
	router.Handler(server.NewCatalogHandler(store, nil))
	router.Handler(server.NewQueueHandler(queue.New(), store, classifier))

	// The library endpoints require a session user; without one they
	// respond 401.
	var libraryHandler *server.LibraryHandler
	if editor, err := r.sessionEditor(db); err == nil {
		libraryHandler = server.NewLibraryHandler(editor)
	} else {
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			return err
		}
		r.logger.Warn("no session user configured, library endpoints disabled")
		libraryHandler = server.NewLibraryHandler(nil)
	}
	router.Handler(libraryHandler)

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
