package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/sweeparr/internal/config"
	"github.com/vmunix/sweeparr/internal/jellyfin"
)

// EpisodeCleaner removes individual watched episode files from Sonarr
// while preserving the series and its unwatched episodes. This is the
// finer-grained counterpart to SeriesCleaner.
//
// Episodes are matched by (season, episode) ordinals: Jellyfin episode
// ids do not correspond to Sonarr episode ids, while ordinals are
// stable across both systems. Specials and absolute-numbered anime may
// number differently and can fail to match; an unmatched episode is
// skipped, never guessed.
type EpisodeCleaner struct {
	jellyfin WatchHistory
	sonarr   SeriesLibrary

	userID     string
	tagsToKeep []string
	retention  *time.Duration

	log *slog.Logger
	now func() time.Time
}

// NewEpisodeCleaner builds an episode cleaner for one Jellyfin user.
func NewEpisodeCleaner(jf WatchHistory, sonarr SeriesLibrary, cfg config.LibraryConfig, userID string, log *slog.Logger) *EpisodeCleaner {
	var retention *time.Duration
	if cfg.RetentionPeriod != nil {
		d := cfg.RetentionPeriod.Duration
		retention = &d
	}
	return &EpisodeCleaner{
		jellyfin:   jf,
		sonarr:     sonarr,
		userID:     userID,
		tagsToKeep: cfg.TagsToKeep,
		retention:  retention,
		log:        log.With("cleaner", "episodes"),
		now:        time.Now,
	}
}

// fileDeletion is one episode file scheduled for removal. EpisodeID is
// needed for unmonitoring, FileID for the file delete.
type fileDeletion struct {
	SeriesTitle string
	Season      int
	Episode     int
	EpisodeID   int64
	FileID      int64
}

func (d fileDeletion) String() string {
	return fmt.Sprintf("%s S%02dE%02d", d.SeriesTitle, d.Season, d.Episode)
}

// Cleanup finds watched episode files eligible for deletion and deletes
// them when forceDelete is set, or lists them otherwise. Failures are
// isolated per episode; any failure makes the whole run fail after all
// episodes were attempted.
func (c *EpisodeCleaner) Cleanup(ctx context.Context, forceDelete bool) error {
	episodes, err := c.watchedEpisodes(ctx)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		c.log.Info("no watched episodes found in Jellyfin")
		return nil
	}

	deletions, err := c.filesForDeletion(ctx, episodes)
	if err != nil {
		return err
	}
	if len(deletions) == 0 {
		c.log.Info("no episode files found for deletion in Sonarr")
		return nil
	}

	if !forceDelete {
		c.log.Info("run without --force-delete, listing episodes instead of deleting")
		for _, d := range deletions {
			c.log.Info("episode eligible for deletion", "episode", d.String())
		}
		return nil
	}

	var failed int
	for _, d := range deletions {
		if err := c.deleteOne(ctx, d); err != nil {
			failed++
			c.log.Error("failed to delete episode", "episode", d.String(),
				"episode_id", d.EpisodeID, "file_id", d.FileID, "error", err)
			continue
		}
		c.log.Info("deleted and unmonitored episode", "episode", d.String())
	}

	c.log.Info("episode deletion complete",
		"succeeded", len(deletions)-failed, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("failed to delete %d out of %d episode files", failed, len(deletions))
	}
	return nil
}

// deleteOne removes a single episode file. The unmonitor must commit
// before the file delete is issued: deleting first leaves a monitored
// gap that Sonarr fills by re-downloading the episode.
func (c *EpisodeCleaner) deleteOne(ctx context.Context, d fileDeletion) error {
	if err := c.sonarr.UnmonitorEpisode(ctx, d.EpisodeID); err != nil {
		return fmt.Errorf("unmonitor episode: %w", err)
	}
	if err := c.sonarr.DeleteEpisodeFile(ctx, d.FileID); err != nil {
		return fmt.Errorf("delete episode file after unmonitoring: %w", err)
	}
	return nil
}

// watchedEpisodes queries Jellyfin for watched episodes past the
// retention period. An episode without a known last-played time is
// never eligible.
func (c *EpisodeCleaner) watchedEpisodes(ctx context.Context) ([]jellyfin.Item, error) {
	episodes, err := c.jellyfin.Items(ctx, jellyfin.Watched().
		UserID(c.userID).
		IncludeItemTypes("Episode").
		Fields("ProviderIds", "SeriesId", "SeriesName"))
	if err != nil {
		return nil, err
	}

	if c.retention == nil {
		if len(episodes) > 0 {
			c.log.Warn("no retention period set for Sonarr, episodes are deleted immediately")
		}
		return episodes, nil
	}

	cutoff := c.now().Add(-*c.retention)
	var eligible []jellyfin.Item
	for _, ep := range episodes {
		lastPlayed, ok := ep.LastPlayed()
		if !ok || !cutoff.After(lastPlayed) {
			c.log.Debug("episode not eligible for deletion yet", "name", ep.Name)
			continue
		}
		eligible = append(eligible, ep)
	}
	return eligible, nil
}

// filesForDeletion maps watched Jellyfin episodes to Sonarr episode
// files. Episodes are grouped by their series' TVDB id so each Sonarr
// series is fetched once.
func (c *EpisodeCleaner) filesForDeletion(ctx context.Context, episodes []jellyfin.Item) ([]fileDeletion, error) {
	byTVDB := make(map[string][]jellyfin.Item)
	var tvdbIDs []string
	for _, ep := range episodes {
		tvdbID := ep.TVDBID()
		if tvdbID == "" {
			c.log.Warn("episode has no TVDB id, cannot match to Sonarr, skipping",
				"name", ep.Name, "series", ep.SeriesName)
			continue
		}
		if _, ok := byTVDB[tvdbID]; !ok {
			tvdbIDs = append(tvdbIDs, tvdbID)
		}
		byTVDB[tvdbID] = append(byTVDB[tvdbID], ep)
	}
	if len(byTVDB) == 0 {
		return nil, nil
	}

	forbidden, err := forbiddenTagIDs(ctx, c.sonarr, c.tagsToKeep, c.log)
	if err != nil {
		return nil, err
	}

	var deletions []fileDeletion
	for _, tvdbID := range tvdbIDs {
		series, err := c.sonarr.SeriesByTVDBID(ctx, tvdbID)
		if err != nil {
			return nil, err
		}
		for _, s := range series {
			if hasForbiddenTag(s.Tags, forbidden) {
				c.log.Debug("series has forbidden tags, skipping all episodes", "title", s.Title)
				continue
			}
			sonarrEpisodes, err := c.sonarr.EpisodesBySeriesID(ctx, s.ID)
			if err != nil {
				return nil, err
			}

			for _, je := range byTVDB[tvdbID] {
				season, episode, ok := je.Ordinals()
				if !ok {
					c.log.Warn("episode missing season or episode number, skipping",
						"name", je.Name, "series", s.Title)
					continue
				}

				matched := false
				for _, se := range sonarrEpisodes {
					if se.SeasonNumber != season || se.EpisodeNumber != episode {
						continue
					}
					matched = true
					if se.EpisodeFileID == 0 {
						c.log.Debug("episode has no file on disk in Sonarr, skipping",
							"title", s.Title, "season", season, "episode", episode)
						break
					}
					deletions = append(deletions, fileDeletion{
						SeriesTitle: s.Title,
						Season:      season,
						Episode:     episode,
						EpisodeID:   se.ID,
						FileID:      se.EpisodeFileID,
					})
					break
				}
				if !matched {
					c.log.Debug("episode not found in Sonarr, skipping",
						"title", s.Title, "season", season, "episode", episode)
				}
			}
		}
	}

	return deletions, nil
}
