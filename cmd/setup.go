package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/shared"
	"github.com/teostudio/catalog/internal/tasks"
)

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.reloadConfig(configPath)
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			r.reloadConfig(configPath)
		}
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return nil
}

// SetupSeed ingests a JSON catalog snapshot into the database.
func (r *Runner) SetupSeed(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: seed file path", shared.ErrMissingArgument)
	}

	r.reloadConfig(cmd.String("config"))

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := tasks.NewMaintenanceEngine(db, r.classifier())

	var progress chan tasks.ProgressUpdate
	var wg sync.WaitGroup
	if !cmd.Bool("quiet") {
		progress = make(chan tasks.ProgressUpdate, 100)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for update := range progress {
				r.writePlainln("%s", update.Message)
			}
		}()
	}

	opts := tasks.SeedOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
	}

	result, err := engine.Seed(ctx, progress, path, opts)
	if progress != nil {
		close(progress)
		wg.Wait()
	}
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	r.writePlainln("✓ Seed complete")
	r.writePlainln("  Tracks: %d/%d", result.InsertedTracks, result.TotalTracks)
	r.writePlainln("  Playlists: %d  Videos: %d  News: %d  Users: %d", result.Playlists, result.Videos, result.News, result.Users)
	if len(result.Failures) > 0 {
		r.writePlainln("  Failures: %d", len(result.Failures))
		for _, failure := range result.Failures {
			r.writePlainln("    ✗ %s: %v", failure.Title, failure.Error)
		}
	}

	return nil
}
