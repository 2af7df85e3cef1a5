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

// SeriesCleaner removes fully watched series from Sonarr and from the
// download clients that fetched them. A series only goes when every
// season is either fully downloaded or will never air again, so a
// partially grabbed show is never lost to a premature delete.
type SeriesCleaner struct {
	jellyfin  WatchHistory
	sonarr    SeriesLibrary
	transfers Transfers

	userID     string
	tagsToKeep []string
	retention  *time.Duration
	unmonitor  bool

	log *slog.Logger
	now func() time.Time
}

// NewSeriesCleaner builds a series cleaner for one Jellyfin user.
func NewSeriesCleaner(jf WatchHistory, sonarr SeriesLibrary, transfers Transfers, cfg config.LibraryConfig, userID string, log *slog.Logger) *SeriesCleaner {
	var retention *time.Duration
	if cfg.RetentionPeriod != nil {
		d := cfg.RetentionPeriod.Duration
		retention = &d
	}
	return &SeriesCleaner{
		jellyfin:   jf,
		sonarr:     sonarr,
		transfers:  transfers,
		userID:     userID,
		tagsToKeep: cfg.TagsToKeep,
		retention:  retention,
		unmonitor:  cfg.Unmonitor,
		log:        log.With("cleaner", "series"),
		now:        time.Now,
	}
}

// watchedShow pairs a Jellyfin series with its watched episodes and
// the matching Sonarr records. The show itself is not necessarily
// fully watched.
type watchedShow struct {
	series          jellyfin.Item
	watchedEpisodes []jellyfin.Item
	sonarrSeries    arr.Series
	sonarrEpisodes  []arr.Episode
	// Sonarr episodes with a file on disk that no watched Jellyfin
	// episode matched.
	unwatchedFiles int
}

// fullyWatched reports whether every on-disk episode Sonarr knows has
// been watched. Jellyfin's own series-level played flag is set
// inconsistently and is deliberately not consulted.
func (s *watchedShow) fullyWatched() bool {
	return s.unwatchedFiles == 0 && len(s.sonarrEpisodes) > 0
}

// latestPlayed returns the most recent last-played time across the
// show's watched episodes.
func (s *watchedShow) latestPlayed() (time.Time, bool) {
	var latest time.Time
	var found bool
	for _, ep := range s.watchedEpisodes {
		if t, ok := ep.LastPlayed(); ok && t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found
}

// Cleanup finds fully watched series eligible for deletion and deletes
// them when forceDelete is set, or lists them otherwise.
func (c *SeriesCleaner) Cleanup(ctx context.Context, forceDelete bool) error {
	shows, err := c.showsWithWatchedEpisodes(ctx)
	if err != nil {
		return err
	}
	if len(shows) == 0 {
		c.log.Info("no watched series found in Jellyfin")
		return nil
	}

	if c.unmonitor {
		if err := c.unmonitorWatchedEpisodes(ctx, shows); err != nil {
			return err
		}
	}

	forbidden, err := forbiddenTagIDs(ctx, c.sonarr, c.tagsToKeep, c.log)
	if err != nil {
		return err
	}

	toDelete := c.filterForDeletion(shows, forbidden)
	if len(toDelete) == 0 {
		c.log.Info("no series found for deletion in Sonarr")
		return nil
	}

	seriesIDs := make([]int64, len(toDelete))
	for i, s := range toDelete {
		seriesIDs[i] = s.ID
	}

	records, err := c.sonarr.History(ctx, seriesIDs)
	if err != nil {
		return err
	}
	hashes := downloadIDs(records)

	if !forceDelete {
		c.log.Info("run without --force-delete, listing series instead of deleting")
		for _, s := range toDelete {
			c.log.Info("series eligible for deletion",
				"title", s.Title, "size", humanize.IBytes(uint64(s.Statistics.SizeOnDisk)))
		}
		return c.transfers.List(ctx, hashes)
	}

	if err := c.deleteSeries(ctx, toDelete); err != nil {
		return err
	}
	return c.transfers.Delete(ctx, hashes)
}

// showsWithWatchedEpisodes queries Jellyfin for watched episodes,
// groups them by series, and resolves each series to Sonarr by TVDB id
// along with the Sonarr episodes matching the watched ones.
func (c *SeriesCleaner) showsWithWatchedEpisodes(ctx context.Context) ([]watchedShow, error) {
	episodes, err := c.jellyfin.Items(ctx, jellyfin.Watched().
		UserID(c.userID).
		IncludeItemTypes("Episode"))
	if err != nil {
		return nil, err
	}

	seriesIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, ep := range episodes {
		if ep.SeriesID == "" {
			continue
		}
		if _, ok := seen[ep.SeriesID]; !ok {
			seen[ep.SeriesID] = struct{}{}
			seriesIDs = append(seriesIDs, ep.SeriesID)
		}
	}
	if len(seriesIDs) == 0 {
		return nil, nil
	}

	// Some of these series may not be fully watched yet; the retention
	// filter checks that later.
	series, err := c.jellyfin.Items(ctx, jellyfin.NewFilter().
		UserID(c.userID).
		IDs(seriesIDs...).
		IncludeItemTypes("Series").
		Fields("ProviderIds"))
	if err != nil {
		return nil, err
	}

	episodesBySeries := make(map[string][]jellyfin.Item)
	for _, ep := range episodes {
		episodesBySeries[ep.SeriesID] = append(episodesBySeries[ep.SeriesID], ep)
	}

	results := make([]*watchedShow, len(series))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range series {
		g.Go(func() error {
			show, err := c.resolveShow(ctx, s, episodesBySeries[s.ID])
			if err != nil {
				return err
			}
			results[i] = show
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var shows []watchedShow
	for _, show := range results {
		if show != nil {
			shows = append(shows, *show)
		}
	}
	return shows, nil
}

// resolveShow matches one Jellyfin series and its watched episodes to
// Sonarr. Returns nil when the series cannot be matched.
func (c *SeriesCleaner) resolveShow(ctx context.Context, series jellyfin.Item, watched []jellyfin.Item) (*watchedShow, error) {
	tvdbID := series.TVDBID()
	if tvdbID == "" {
		c.log.Warn("series has no TVDB id, skipping", "name", series.Name)
		return nil, nil
	}

	candidates, err := c.sonarr.SeriesByTVDBID(ctx, tvdbID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		c.log.Warn("series not found in Sonarr", "name", series.Name, "tvdb_id", tvdbID)
		return nil, nil
	}
	// One Sonarr entry per TVDB id is assumed.
	sonarrSeries := candidates[0]

	episodes, err := c.sonarr.EpisodesBySeriesID(ctx, sonarrSeries.ID)
	if err != nil {
		return nil, err
	}

	// Keep only Sonarr episodes whose (season, episode) pair matches a
	// watched Jellyfin episode, and count on-disk episodes nothing
	// watched maps to.
	var matched []arr.Episode
	var unwatchedFiles int
	for _, se := range episodes {
		found := false
		for _, je := range watched {
			if !je.Watched() {
				continue
			}
			season, episode, ok := je.Ordinals()
			if !ok {
				continue
			}
			if se.SeasonNumber == season && se.EpisodeNumber == episode {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, se)
		} else if se.EpisodeFileID != 0 {
			unwatchedFiles++
		}
	}

	return &watchedShow{
		series:          series,
		watchedEpisodes: watched,
		sonarrSeries:    sonarrSeries,
		sonarrEpisodes:  matched,
		unwatchedFiles:  unwatchedFiles,
	}, nil
}

// unmonitorWatchedEpisodes clears the monitored flag on watched
// episodes that are still monitored.
func (c *SeriesCleaner) unmonitorWatchedEpisodes(ctx context.Context, shows []watchedShow) error {
	var ids []int64
	var titles []string
	for _, show := range shows {
		for _, ep := range show.sonarrEpisodes {
			if ep.Monitored {
				ids = append(ids, ep.ID)
				titles = append(titles, fmt.Sprintf("%s S%02dE%02d",
					show.sonarrSeries.Title, ep.SeasonNumber, ep.EpisodeNumber))
			}
		}
	}
	if len(ids) == 0 {
		c.log.Debug("no monitored episodes found for unmonitoring")
		return nil
	}
	if err := c.sonarr.UnmonitorEpisodes(ctx, ids); err != nil {
		return fmt.Errorf("unmonitor episodes: %w", err)
	}
	c.log.Info("unmonitored episodes in Sonarr", "episodes", titles)
	return nil
}

// filterForDeletion keeps only fully watched shows past their retention
// period whose series record is safe to delete.
func (c *SeriesCleaner) filterForDeletion(shows []watchedShow, forbidden []int64) []arr.Series {
	var eligible []arr.Series

	if c.retention == nil {
		c.log.Warn("no retention period set for Sonarr, series are deleted immediately")
		for _, show := range shows {
			eligible = append(eligible, show.sonarrSeries)
		}
	} else {
		cutoff := c.now().Add(-*c.retention)
		for _, show := range shows {
			if !show.fullyWatched() {
				c.log.Debug("series not fully watched, skipping",
					"title", show.sonarrSeries.Title, "unwatched_files", show.unwatchedFiles)
				continue
			}
			lastPlayed, ok := show.latestPlayed()
			if !ok {
				continue
			}
			if cutoff.After(lastPlayed) {
				eligible = append(eligible, show.sonarrSeries)
			} else {
				c.log.Debug("retention period not yet passed for one or more episodes, skipping",
					"title", show.sonarrSeries.Title, "left", retentionLeft(lastPlayed, cutoff))
			}
		}
	}

	var out []arr.Series
	for _, s := range eligible {
		if reason := deleteBlockReason(s, forbidden); reason != "" {
			c.log.Debug("series not safe to delete, skipping", "title", s.Title, "reason", reason)
			continue
		}
		out = append(out, s)
	}
	return out
}

// deleteBlockReason reports why a series must not be deleted, or ""
// when deletion is safe. A season with a pending airing blocks deletion
// unless it is already fully downloaded.
func deleteBlockReason(s arr.Series, forbidden []int64) string {
	if hasForbiddenTag(s.Tags, forbidden) {
		return "has forbidden tags"
	}
	if s.Statistics.SizeOnDisk == 0 {
		return "not present on disk"
	}
	if s.Seasons == nil {
		return "missing seasons entry"
	}
	if len(s.Seasons) == 0 {
		return "has no seasons"
	}
	for _, season := range s.Seasons {
		stats := season.Statistics
		fullyDownloaded := stats.EpisodeFileCount >= stats.TotalEpisodeCount
		wontAir := stats.NextAiring == nil
		if !fullyDownloaded && !wontAir {
			return fmt.Sprintf("season %d still airing and not fully downloaded", season.SeasonNumber)
		}
	}
	return ""
}

// deleteSeries removes the given series from Sonarr in parallel. A
// single failure aborts the batch.
func (c *SeriesCleaner) deleteSeries(ctx context.Context, series []arr.Series) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range series {
		g.Go(func() error {
			if err := c.sonarr.DeleteSeries(ctx, s.ID); err != nil {
				return fmt.Errorf("delete series %q: %w", s.Title, err)
			}
			c.log.Info("deleted series from Sonarr",
				"title", s.Title, "size", humanize.IBytes(uint64(s.Statistics.SizeOnDisk)))
			return nil
		})
	}
	return g.Wait()
}
