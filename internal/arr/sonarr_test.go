package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonarr_SeriesByTVDBID(t *testing.T) {
	airing := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "81189", r.URL.Query().Get("tvdbId"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Series{
			{
				ID:         3,
				Title:      "Breaking Bad",
				Tags:       []int64{1},
				Statistics: SeriesStatistics{SizeOnDisk: 50_000_000_000},
				Seasons: []Season{
					{SeasonNumber: 1, Monitored: true, Statistics: SeasonStatistics{
						EpisodeFileCount: 7, TotalEpisodeCount: 7,
					}},
					{SeasonNumber: 2, Monitored: true, Statistics: SeasonStatistics{
						NextAiring: &airing, EpisodeFileCount: 3, TotalEpisodeCount: 13,
					}},
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewSonarr(server.URL, "test-key")
	require.NoError(t, err)

	series, err := client.SeriesByTVDBID(context.Background(), "81189")
	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Len(t, series[0].Seasons, 2)
	assert.Nil(t, series[0].Seasons[0].Statistics.NextAiring)
	require.NotNil(t, series[0].Seasons[1].Statistics.NextAiring)
	assert.Equal(t, airing, *series[0].Seasons[1].Statistics.NextAiring)
}

func TestSonarr_EpisodesBySeriesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/episode", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("seriesId"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Episode{
			{ID: 123, SeriesID: 3, SeasonNumber: 1, EpisodeNumber: 5, Monitored: true, EpisodeFileID: 456},
			{ID: 124, SeriesID: 3, SeasonNumber: 1, EpisodeNumber: 6, Monitored: true},
		})
	}))
	defer server.Close()

	client, err := NewSonarr(server.URL, "k")
	require.NoError(t, err)

	episodes, err := client.EpisodesBySeriesID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, int64(456), episodes[0].EpisodeFileID)
	assert.Zero(t, episodes[1].EpisodeFileID, "missing file id decodes as zero")
}

func TestSonarr_UnmonitorEpisode(t *testing.T) {
	var got episodesMonitor
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v3/episode/monitor", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := NewSonarr(server.URL, "k")
	require.NoError(t, err)

	require.NoError(t, client.UnmonitorEpisode(context.Background(), 123))
	assert.Equal(t, []int64{123}, got.EpisodeIDs)
	assert.False(t, got.Monitored)
}

func TestSonarr_DeleteEpisodeFile(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewSonarr(server.URL, "k")
	require.NoError(t, err)

	require.NoError(t, client.DeleteEpisodeFile(context.Background(), 456))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v3/episodefile/456", gotPath)
}

func TestSonarr_DeleteSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v3/series/3", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewSonarr(server.URL, "k")
	require.NoError(t, err)
	require.NoError(t, client.DeleteSeries(context.Background(), 3))
}
