package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/sweeparr/internal/arr"
	"github.com/vmunix/sweeparr/internal/config"
	"github.com/vmunix/sweeparr/internal/jellyfin"
)

// MovieCleaner removes fully watched movies from Radarr and from the
// download clients that fetched them.
type MovieCleaner struct {
	jellyfin  WatchHistory
	radarr    MovieLibrary
	transfers Transfers

	userID     string
	tagsToKeep []string
	retention  *time.Duration
	unmonitor  bool

	log *slog.Logger
	now func() time.Time
}

// NewMovieCleaner builds a movie cleaner for one Jellyfin user.
func NewMovieCleaner(jf WatchHistory, radarr MovieLibrary, transfers Transfers, cfg config.LibraryConfig, userID string, log *slog.Logger) *MovieCleaner {
	var retention *time.Duration
	if cfg.RetentionPeriod != nil {
		d := cfg.RetentionPeriod.Duration
		retention = &d
	}
	return &MovieCleaner{
		jellyfin:   jf,
		radarr:     radarr,
		transfers:  transfers,
		userID:     userID,
		tagsToKeep: cfg.TagsToKeep,
		retention:  retention,
		unmonitor:  cfg.Unmonitor,
		log:        log.With("cleaner", "movies"),
		now:        time.Now,
	}
}

// watchedMovie pairs a watched Jellyfin item with its Radarr entries.
// One catalog id can map to several library entries.
type watchedMovie struct {
	item   jellyfin.Item
	movies []arr.Movie
}

// Cleanup finds watched movies eligible for deletion and deletes them
// when forceDelete is set, or lists them otherwise.
func (c *MovieCleaner) Cleanup(ctx context.Context, forceDelete bool) error {
	watched, err := c.watchedMovies(ctx)
	if err != nil {
		return err
	}
	if len(watched) == 0 {
		c.log.Info("no watched movies found in Jellyfin")
		return nil
	}

	if c.unmonitor {
		if err := c.unmonitorWatched(ctx, watched); err != nil {
			return err
		}
	}

	forbidden, err := forbiddenTagIDs(ctx, c.radarr, c.tagsToKeep, c.log)
	if err != nil {
		return err
	}

	toDelete := c.filterForDeletion(watched, forbidden)
	if len(toDelete) == 0 {
		c.log.Info("no movies found for deletion in Radarr")
		return nil
	}

	movieIDs := make([]int64, len(toDelete))
	for i, m := range toDelete {
		movieIDs[i] = m.ID
	}

	records, err := c.radarr.History(ctx, movieIDs)
	if err != nil {
		return err
	}
	hashes := downloadIDs(records)

	if !forceDelete {
		c.log.Info("run without --force-delete, listing movies instead of deleting")
		for _, m := range toDelete {
			c.log.Info("movie eligible for deletion",
				"title", m.Title, "size", humanize.IBytes(uint64(m.SizeOnDisk)))
		}
		return c.transfers.List(ctx, hashes)
	}

	if err := c.deleteMovies(ctx, toDelete); err != nil {
		return err
	}
	return c.transfers.Delete(ctx, hashes)
}

// watchedMovies queries Jellyfin for fully watched movies and resolves
// each to its Radarr entries by TMDB id.
func (c *MovieCleaner) watchedMovies(ctx context.Context) ([]watchedMovie, error) {
	items, err := c.jellyfin.Items(ctx, jellyfin.Watched().
		UserID(c.userID).
		IncludeItemTypes("Movie", "Video"))
	if err != nil {
		return nil, err
	}

	results := make([]watchedMovie, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			if item.TMDBID() == "" {
				c.log.Warn("movie has no TMDB id, skipping", "name", item.Name)
				return nil
			}
			movies, err := c.radarr.MoviesByTMDBID(ctx, item.TMDBID())
			if err != nil {
				return err
			}
			results[i] = watchedMovie{item: item, movies: movies}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	watched := results[:0]
	for _, wm := range results {
		if len(wm.movies) > 0 {
			watched = append(watched, wm)
		}
	}
	return watched, nil
}

// unmonitorWatched clears the monitored flag on watched movies that
// are still monitored.
func (c *MovieCleaner) unmonitorWatched(ctx context.Context, watched []watchedMovie) error {
	var ids []int64
	var titles []string
	for _, wm := range watched {
		for _, m := range wm.movies {
			if m.Monitored {
				ids = append(ids, m.ID)
				titles = append(titles, m.Title)
			}
		}
	}
	if len(ids) == 0 {
		c.log.Debug("no monitored movies found for unmonitoring")
		return nil
	}
	if err := c.radarr.UnmonitorMovies(ctx, ids); err != nil {
		return fmt.Errorf("unmonitor movies: %w", err)
	}
	c.log.Info("unmonitored movies in Radarr", "titles", titles)
	return nil
}

// filterForDeletion applies the retention period and keep-tags. Without
// a retention period every watched movie is eligible immediately.
func (c *MovieCleaner) filterForDeletion(watched []watchedMovie, forbidden []int64) []arr.Movie {
	var eligible []arr.Movie

	if c.retention == nil {
		c.log.Warn("no retention period set for Radarr, movies are deleted immediately")
		for _, wm := range watched {
			eligible = append(eligible, wm.movies...)
		}
	} else {
		cutoff := c.now().Add(-*c.retention)
		for _, wm := range watched {
			lastPlayed, ok := wm.item.LastPlayed()
			if !ok {
				continue
			}
			if cutoff.After(lastPlayed) {
				eligible = append(eligible, wm.movies...)
			} else {
				c.log.Debug("retention period not yet passed, skipping",
					"name", wm.item.Name, "left", retentionLeft(lastPlayed, cutoff))
			}
		}
	}

	var out []arr.Movie
	for _, m := range eligible {
		if hasForbiddenTag(m.Tags, forbidden) {
			c.log.Debug("movie has forbidden tags, skipping", "title", m.Title)
			continue
		}
		out = append(out, m)
	}
	return out
}

// deleteMovies removes the given movies from Radarr in parallel. A
// single failure aborts the batch.
func (c *MovieCleaner) deleteMovies(ctx context.Context, movies []arr.Movie) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, m := range movies {
		g.Go(func() error {
			if err := c.radarr.DeleteMovie(ctx, m.ID); err != nil {
				return fmt.Errorf("delete movie %q: %w", m.Title, err)
			}
			c.log.Info("deleted movie from Radarr",
				"title", m.Title, "size", humanize.IBytes(uint64(m.SizeOnDisk)))
			return nil
		})
	}
	return g.Wait()
}
