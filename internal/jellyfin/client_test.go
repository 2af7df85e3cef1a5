package jellyfin

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

func TestClient_Items(t *testing.T) {
	played := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Items", r.URL.Path)
		assert.Equal(t, "MediaBrowser Token=test-key", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "user-1", q.Get("userId"))
		assert.Equal(t, "Movie,Video", q.Get("includeItemTypes"))
		assert.Equal(t, "true", q.Get("recursive"))
		assert.Equal(t, "true", q.Get("isPlayed"))
		assert.Equal(t, "false", q.Get("isFavorite"))
		assert.Equal(t, "ProviderIds", q.Get("fields"))

		resp := itemsResponse{Items: []Item{
			{
				ID:          "jf-1",
				Name:        "Fight Club",
				ProviderIDs: &ProviderIDs{TMDB: "550"},
				UserData:    &UserData{Played: true, LastPlayedDate: &played},
			},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := New(server.URL, "test-key")
	require.NoError(t, err)

	items, err := client.Items(context.Background(), Watched().
		UserID("user-1").
		IncludeItemTypes("Movie", "Video"))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Fight Club", items[0].Name)
	assert.Equal(t, "550", items[0].TMDBID())
	assert.Equal(t, "", items[0].TVDBID())

	last, ok := items[0].LastPlayed()
	require.True(t, ok)
	assert.Equal(t, played, last)
}

func TestClient_Items_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(server.URL, "k")
	require.NoError(t, err)

	_, err = client.Items(context.Background(), Watched())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_UserByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]User{
			{ID: "u1", Name: "john"},
			{ID: "u2", Name: "jane"},
		})
	}))
	defer server.Close()

	client, err := New(server.URL, "k")
	require.NoError(t, err)

	user, err := client.UserByName(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
}

func TestClient_UserByName_SuggestsClosest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]User{
			{ID: "u1", Name: "john"},
			{ID: "u2", Name: "jane"},
		})
	}))
	defer server.Close()

	client, err := New(server.URL, "k")
	require.NoError(t, err)

	_, err = client.UserByName(context.Background(), "jhon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), `did you mean "john"`)
}

func TestItem_Ordinals(t *testing.T) {
	season, episode := 1, 5
	item := Item{SeasonNum: &season, EpisodeNum: &episode}
	s, e, ok := item.Ordinals()
	require.True(t, ok)
	assert.Equal(t, 1, s)
	assert.Equal(t, 5, e)

	noSeason := Item{EpisodeNum: &episode}
	_, _, ok = noSeason.Ordinals()
	assert.False(t, ok)

	noEpisode := Item{SeasonNum: &season}
	_, _, ok = noEpisode.Ordinals()
	assert.False(t, ok)
}
