package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/sweeparr/internal/arr"
	"github.com/vmunix/sweeparr/internal/cleanup/mocks"
	"github.com/vmunix/sweeparr/internal/config"
	"github.com/vmunix/sweeparr/internal/jellyfin"
	"github.com/vmunix/sweeparr/internal/torrent"
)

type movieMocks struct {
	jellyfin  *mocks.MockWatchHistory
	radarr    *mocks.MockMovieLibrary
	transfers *mocks.MockTransfers
}

func newMovieCleaner(t *testing.T, cfg config.LibraryConfig, now time.Time) (*MovieCleaner, movieMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := movieMocks{
		jellyfin:  mocks.NewMockWatchHistory(ctrl),
		radarr:    mocks.NewMockMovieLibrary(ctrl),
		transfers: mocks.NewMockTransfers(ctrl),
	}
	c := NewMovieCleaner(m.jellyfin, m.radarr, m.transfers, cfg, "user-1", testLogger())
	c.now = func() time.Time { return now }
	return c, m
}

func TestMovieCleaner_ForceDelete(t *testing.T) {
	now := time.Now()
	cfg := config.LibraryConfig{RetentionPeriod: retentionOf(24 * time.Hour)}
	c, m := newMovieCleaner(t, cfg, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-25*time.Hour))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat", SizeOnDisk: 1 << 30}}, nil)
	m.radarr.EXPECT().History(gomock.Any(), []int64{10}).
		Return([]arr.HistoryRecord{
			{DownloadID: "AAA111", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		}, nil)
	m.radarr.EXPECT().DeleteMovie(gomock.Any(), int64(10)).Return(nil)
	m.transfers.EXPECT().Delete(gomock.Any(), map[torrent.Kind][]string{
		torrent.KindQbittorrent: {"AAA111"},
	}).Return(nil)

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_DryRun_ListsOnly(t *testing.T) {
	now := time.Now()
	cfg := config.LibraryConfig{RetentionPeriod: retentionOf(24 * time.Hour)}
	c, m := newMovieCleaner(t, cfg, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-25*time.Hour))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat"}}, nil)
	m.radarr.EXPECT().History(gomock.Any(), []int64{10}).Return(nil, nil)
	// no DeleteMovie, no transfer deletion
	m.transfers.EXPECT().List(gomock.Any(), map[torrent.Kind][]string{}).Return(nil)

	require.NoError(t, c.Cleanup(context.Background(), false))
}

func TestMovieCleaner_RetentionBoundary(t *testing.T) {
	now := time.Now()
	cfg := config.LibraryConfig{RetentionPeriod: retentionOf(24 * time.Hour)}
	c, m := newMovieCleaner(t, cfg, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{
			movieItem("Old", "1", now.Add(-25*time.Hour)),
			movieItem("Fresh", "2", now.Add(-23*time.Hour)),
		}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "1").
		Return([]arr.Movie{{ID: 1, Title: "Old"}}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "2").
		Return([]arr.Movie{{ID: 2, Title: "Fresh"}}, nil)
	m.radarr.EXPECT().History(gomock.Any(), []int64{1}).Return(nil, nil)
	m.radarr.EXPECT().DeleteMovie(gomock.Any(), int64(1)).Return(nil)
	m.transfers.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_NoRetentionDeletesImmediately(t *testing.T) {
	now := time.Now()
	c, m := newMovieCleaner(t, config.LibraryConfig{}, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-time.Minute))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat"}}, nil)
	m.radarr.EXPECT().History(gomock.Any(), []int64{10}).
		Return([]arr.HistoryRecord{
			{DownloadID: "AAA111", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		}, nil)
	m.radarr.EXPECT().DeleteMovie(gomock.Any(), int64(10)).Return(nil)
	m.transfers.EXPECT().Delete(gomock.Any(), map[torrent.Kind][]string{
		torrent.KindQbittorrent: {"AAA111"},
	}).Return(nil)

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_ForbiddenTags(t *testing.T) {
	now := time.Now()
	cfg := config.LibraryConfig{
		RetentionPeriod: retentionOf(24 * time.Hour),
		TagsToKeep:      []string{"keep"},
	}
	c, m := newMovieCleaner(t, cfg, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-25*time.Hour))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat", Tags: []int64{5}}}, nil)
	m.radarr.EXPECT().Tags(gomock.Any()).
		Return([]arr.Tag{{ID: 4, Label: "other"}, {ID: 5, Label: "keep"}}, nil)
	// nothing survives the tag filter, so neither history nor deletion runs

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_SkipsItemsWithoutTMDBID(t *testing.T) {
	now := time.Now()
	c, m := newMovieCleaner(t, config.LibraryConfig{}, now)

	item := movieItem("Unknown", "", now.Add(-time.Hour))
	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{item}, nil)
	// no MoviesByTMDBID call for an item without a catalog id

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_Unmonitor(t *testing.T) {
	now := time.Now()
	cfg := config.LibraryConfig{
		RetentionPeriod: retentionOf(24 * time.Hour),
		Unmonitor:       true,
	}
	c, m := newMovieCleaner(t, cfg, now)

	// watched recently: unmonitored but not deleted
	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-time.Hour))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat", Monitored: true}}, nil)
	m.radarr.EXPECT().UnmonitorMovies(gomock.Any(), []int64{10}).Return(nil)

	require.NoError(t, c.Cleanup(context.Background(), true))
}

func TestMovieCleaner_DeleteFailure(t *testing.T) {
	now := time.Now()
	c, m := newMovieCleaner(t, config.LibraryConfig{RetentionPeriod: retentionOf(time.Hour)}, now)

	m.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{movieItem("Heat", "949", now.Add(-2*time.Hour))}, nil)
	m.radarr.EXPECT().MoviesByTMDBID(gomock.Any(), "949").
		Return([]arr.Movie{{ID: 10, Title: "Heat"}}, nil)
	m.radarr.EXPECT().History(gomock.Any(), []int64{10}).Return(nil, nil)
	m.radarr.EXPECT().DeleteMovie(gomock.Any(), int64(10)).
		Return(assert.AnError)
	// transfers must not be touched when the library delete failed

	err := c.Cleanup(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `delete movie "Heat"`)
}
