package cleanup

import (
	"context"
	"io"
	"log/slog"
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

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func retentionOf(d time.Duration) *config.Duration {
	return &config.Duration{Duration: d}
}

// movieItem builds a watched Jellyfin movie item.
func movieItem(name, tmdbID string, lastPlayed time.Time) jellyfin.Item {
	return jellyfin.Item{
		ID:          "jf-" + name,
		Name:        name,
		ProviderIDs: &jellyfin.ProviderIDs{TMDB: tmdbID},
		UserData: &jellyfin.UserData{
			Played:         true,
			LastPlayedDate: &lastPlayed,
		},
	}
}

// episodeItem builds a watched Jellyfin episode item.
func episodeItem(series, tvdbID string, season, episode int, lastPlayed time.Time) jellyfin.Item {
	return jellyfin.Item{
		ID:          "jf-ep",
		Name:        "some episode",
		SeriesID:    "jf-" + series,
		SeriesName:  series,
		SeasonNum:   &season,
		EpisodeNum:  &episode,
		ProviderIDs: &jellyfin.ProviderIDs{TVDB: tvdbID},
		UserData: &jellyfin.UserData{
			Played:         true,
			LastPlayedDate: &lastPlayed,
		},
	}
}

func TestDownloadIDs(t *testing.T) {
	records := []arr.HistoryRecord{
		{DownloadID: "AAA", EventType: "grabbed", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		{DownloadID: "BBB", EventType: "grabbed", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		{DownloadID: "AAA", EventType: "grabbed", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		{DownloadID: "ccc", EventType: "grabbed", Data: arr.HistoryData{DownloadClient: "Deluge"}},
		{DownloadID: "", EventType: "grabbed", Data: arr.HistoryData{DownloadClient: "qBittorrent"}},
		{DownloadID: "DDD", EventType: "grabbed"},
	}

	hashes := downloadIDs(records)

	assert.Equal(t, map[torrent.Kind][]string{
		torrent.KindQbittorrent: {"AAA", "BBB"},
		torrent.KindDeluge:      {"ccc"},
	}, hashes)
}

func TestHasForbiddenTag(t *testing.T) {
	assert.True(t, hasForbiddenTag([]int64{5}, []int64{4, 5, 6}))
	assert.False(t, hasForbiddenTag([]int64{1, 2, 3}, []int64{4, 5, 6}))
	assert.False(t, hasForbiddenTag(nil, []int64{4, 5, 6}))
	assert.False(t, hasForbiddenTag([]int64{5}, nil))
}

func TestForbiddenTagIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocks.NewMocktagLister(ctrl)
	lib.EXPECT().Tags(gomock.Any()).Return([]arr.Tag{
		{ID: 4, Label: "keep"},
		{ID: 9, Label: "favorites"},
	}, nil)

	ids, err := forbiddenTagIDs(context.Background(), lib, []string{"keep", "favourites"}, testLogger())

	require.NoError(t, err)
	// "favourites" resolves to nothing and only warns
	assert.Equal(t, []int64{4}, ids)
}

func TestForbiddenTagIDs_NoneConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocks.NewMocktagLister(ctrl)
	// no Tags call expected

	ids, err := forbiddenTagIDs(context.Background(), lib, nil, testLogger())

	require.NoError(t, err)
	assert.Empty(t, ids)
}
