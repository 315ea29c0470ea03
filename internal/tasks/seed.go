package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/time/rate"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/repositories"
)

// SeedOpts contains configuration for catalog seed runs.
type SeedOpts struct {
	NumWorkers int     // Concurrent insert workers (default: 5)
	RateLimit  float64 // Track inserts per second (default: 50)
}

// Seed ingests a JSON catalog snapshot into the database.
//
// Tracks make up the bulk of a snapshot and are inserted through a worker
// pool fed by a rate limiter. Playlists, videos, news and users are small
// sections and are inserted sequentially afterwards, so playlist track ids
// always reference tracks already present. Partial failures are collected
// rather than aborting the run.
func (e *MaintenanceEngine) Seed(ctx context.Context, progress chan<- ProgressUpdate, path string, opts SeedOpts) (*SeedResult, error) {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 50.0
	}

	e.sendProgress(progress, readSeedUpdate(path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	result := &SeedResult{TotalTracks: len(seed.Tracks)}

	e.seedTracks(ctx, progress, seed.Tracks, opts, result)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	e.seedSections(ctx, progress, &seed, result)
	return result, ctx.Err()
}

// seedTracks runs the rate-limited worker pool over the track section.
func (e *MaintenanceEngine) seedTracks(ctx context.Context, progress chan<- ProgressUpdate, tracks []models.Track, opts SeedOpts, result *SeedResult) {
	if len(tracks) == 0 {
		return
	}

	repo := repositories.NewTrackRepository(e.db)
	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan models.Track, len(tracks))
	results := make(chan ItemResult, len(tracks))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for track := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				item := ItemResult{ID: track.ID, Title: track.Title}
				if err := repo.Create(&track); err != nil {
					item.Error = fmt.Errorf("failed to insert track: %w", err)
				} else {
					item.Success = true
				}
				results <- item
			}
		}()
	}

	go func() {
		for _, track := range tracks {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
			jobs <- track
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for item := range results {
		completed++
		if item.Success {
			result.InsertedTracks++
		} else {
			result.FailedTracks++
			result.Failures = append(result.Failures, item)
		}
		e.sendProgress(progress, seedTrackUpdate(completed, len(tracks), item.Title))
	}
}

// seedSections inserts the non-track sections sequentially.
func (e *MaintenanceEngine) seedSections(ctx context.Context, progress chan<- ProgressUpdate, seed *SeedFile, result *SeedResult) {
	playlists := repositories.NewPlaylistRepository(e.db)
	e.sendProgress(progress, seedSectionUpdate(SeedPlaylists, 1, len(seed.Playlists), "playlists"))
	for i := range seed.Playlists {
		playlist := seed.Playlists[i]
		if err := playlists.Create(&playlist); err != nil {
			result.Failures = append(result.Failures, ItemResult{ID: playlist.ID, Title: playlist.Title, Error: err})
			continue
		}
		result.Playlists++
	}

	videos := repositories.NewVideoRepository(e.db)
	e.sendProgress(progress, seedSectionUpdate(SeedVideos, 1, len(seed.Videos), "videos"))
	for i := range seed.Videos {
		video := seed.Videos[i]
		if err := videos.Create(&video); err != nil {
			result.Failures = append(result.Failures, ItemResult{ID: video.ID, Title: video.Title, Error: err})
			continue
		}
		result.Videos++
	}

	news := repositories.NewNewsRepository(e.db)
	e.sendProgress(progress, seedSectionUpdate(SeedNews, 1, len(seed.News), "news articles"))
	for i := range seed.News {
		article := seed.News[i]
		if err := news.Create(&article); err != nil {
			result.Failures = append(result.Failures, ItemResult{ID: article.ID, Title: article.Title, Error: err})
			continue
		}
		result.News++
	}

	users := repositories.NewUserRepository(e.db)
	userPlaylists := repositories.NewUserPlaylistRepository(e.db)
	e.sendProgress(progress, seedSectionUpdate(SeedUsers, 1, len(seed.Users), "users"))
	for i := range seed.Users {
		user := seed.Users[i]
		if err := users.Create(&user); err != nil {
			result.Failures = append(result.Failures, ItemResult{ID: user.ID, Title: user.Email, Error: err})
			continue
		}
		result.Users++

		for j := range user.Playlists {
			playlist := user.Playlists[j]
			playlist.OwnerID = user.ID
			if err := userPlaylists.Create(&playlist); err != nil {
				result.Failures = append(result.Failures, ItemResult{ID: playlist.ID, Title: playlist.Title, Error: err})
			}
		}
	}
}
