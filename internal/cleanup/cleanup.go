// Package cleanup decides what watched media can be removed and drives
// the removal across the library managers and download clients.
//
// Three cleaners share the same shape: query Jellyfin for watched
// items, cross-reference them to the library manager by catalog id,
// filter by retention period and keep-tags, then either delete or list
// depending on the force-delete flag.
package cleanup

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vmunix/sweeparr/internal/arr"
	"github.com/vmunix/sweeparr/internal/jellyfin"
	"github.com/vmunix/sweeparr/internal/match"
	"github.com/vmunix/sweeparr/internal/torrent"
)

//go:generate mockgen -source=cleanup.go -destination=mocks/cleanup_mocks.go -package=mocks

// WatchHistory is the Jellyfin surface the cleaners consume.
type WatchHistory interface {
	Items(ctx context.Context, filter jellyfin.ItemsFilter) ([]jellyfin.Item, error)
}

// MovieLibrary is the Radarr surface the movie cleaner consumes.
type MovieLibrary interface {
	MoviesByTMDBID(ctx context.Context, tmdbID string) ([]arr.Movie, error)
	Tags(ctx context.Context) ([]arr.Tag, error)
	DeleteMovie(ctx context.Context, id int64) error
	History(ctx context.Context, movieIDs []int64) ([]arr.HistoryRecord, error)
	UnmonitorMovies(ctx context.Context, ids []int64) error
}

// SeriesLibrary is the Sonarr surface the series and episode cleaners
// consume.
type SeriesLibrary interface {
	SeriesByTVDBID(ctx context.Context, tvdbID string) ([]arr.Series, error)
	EpisodesBySeriesID(ctx context.Context, seriesID int64) ([]arr.Episode, error)
	Tags(ctx context.Context) ([]arr.Tag, error)
	DeleteSeries(ctx context.Context, id int64) error
	History(ctx context.Context, seriesIDs []int64) ([]arr.HistoryRecord, error)
	UnmonitorEpisodes(ctx context.Context, ids []int64) error
	UnmonitorEpisode(ctx context.Context, id int64) error
	DeleteEpisodeFile(ctx context.Context, fileID int64) error
}

// Transfers routes per-client transfer operations, keyed by download
// client kind.
type Transfers interface {
	List(ctx context.Context, hashes map[torrent.Kind][]string) error
	Delete(ctx context.Context, hashes map[torrent.Kind][]string) error
}

// tagLister is the shared tag surface of both libraries.
type tagLister interface {
	Tags(ctx context.Context) ([]arr.Tag, error)
}

// forbiddenTagIDs resolves the configured keep-tag names to ids on the
// given library. A configured name that resolves to nothing is reported
// with the closest existing label, since a typo silently disables the
// protection it was meant to give.
func forbiddenTagIDs(ctx context.Context, lib tagLister, tagsToKeep []string, log *slog.Logger) ([]int64, error) {
	if len(tagsToKeep) == 0 {
		return nil, nil
	}
	log.Debug("keep-tags configured", "tags", tagsToKeep)

	tags, err := lib.Tags(ctx)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string]int64, len(tags))
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		byLabel[t.Label] = t.ID
		labels = append(labels, t.Label)
	}

	var ids []int64
	for _, name := range tagsToKeep {
		id, ok := byLabel[name]
		if !ok {
			if closest, found := match.Closest(name, labels); found {
				log.Warn("configured keep-tag does not exist", "tag", name, "closest", closest)
			} else {
				log.Warn("configured keep-tag does not exist", "tag", name)
			}
			continue
		}
		ids = append(ids, id)
	}

	log.Debug("forbidden tag ids", "ids", ids)
	return ids, nil
}

// hasForbiddenTag reports whether any of the item's tags is forbidden.
func hasForbiddenTag(tags, forbidden []int64) bool {
	for _, t := range tags {
		for _, f := range forbidden {
			if t == f {
				return true
			}
		}
	}
	return false
}

// downloadIDs groups the transfer hashes of grab history records by
// download client kind. Records without a hash or a client name are
// skipped; duplicates collapse.
func downloadIDs(records []arr.HistoryRecord) map[torrent.Kind][]string {
	sets := make(map[torrent.Kind]map[string]struct{})
	for _, r := range records {
		if r.DownloadID == "" || r.Data.DownloadClient == "" {
			continue
		}
		kind := torrent.ParseKind(r.Data.DownloadClient)
		if sets[kind] == nil {
			sets[kind] = make(map[string]struct{})
		}
		sets[kind][r.DownloadID] = struct{}{}
	}

	out := make(map[torrent.Kind][]string, len(sets))
	for kind, hashes := range sets {
		list := make([]string, 0, len(hashes))
		for h := range hashes {
			list = append(list, h)
		}
		sort.Strings(list)
		out[kind] = list
	}
	return out
}
