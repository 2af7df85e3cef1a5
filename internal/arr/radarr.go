package arr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Radarr is a client for the Radarr v3 API.
// https://radarr.video/docs/api/
type Radarr struct {
	client
}

// NewRadarr creates a Radarr client.
func NewRadarr(baseURL, apiKey string, opts ...Option) (*Radarr, error) {
	c, err := newClient("radarr", baseURL, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Radarr{client: c}, nil
}

// MoviesByTMDBID returns every library entry for a TMDB id. Duplicate
// entries for one id are possible and returned as-is.
func (r *Radarr) MoviesByTMDBID(ctx context.Context, tmdbID string) ([]Movie, error) {
	query := url.Values{}
	query.Set("tmdbId", tmdbID)

	var movies []Movie
	if err := r.do(ctx, http.MethodGet, "/movie", query, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Tags lists all Radarr tags.
func (r *Radarr) Tags(ctx context.Context) ([]Tag, error) {
	return r.tags(ctx)
}

// DeleteMovie removes a movie and its files.
func (r *Radarr) DeleteMovie(ctx context.Context, id int64) error {
	query := url.Values{}
	query.Set("deleteFiles", "true")
	return r.do(ctx, http.MethodDelete, "/movie/"+strconv.FormatInt(id, 10), query, nil, nil)
}

// History returns grab-event history records for the given movie ids.
func (r *Radarr) History(ctx context.Context, movieIDs []int64) ([]HistoryRecord, error) {
	return r.history(ctx, "movieIds", movieIDs)
}

// movieEditor is the PUT /movie/editor bulk-edit request body.
type movieEditor struct {
	MovieIDs  []int64 `json:"movieIds"`
	Monitored bool    `json:"monitored"`
}

// UnmonitorMovies clears the monitored flag on the given movies.
func (r *Radarr) UnmonitorMovies(ctx context.Context, ids []int64) error {
	body := movieEditor{MovieIDs: ids, Monitored: false}
	return r.do(ctx, http.MethodPut, "/movie/editor", nil, body, nil)
}
