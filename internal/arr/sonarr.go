package arr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Sonarr is a client for the Sonarr v3 API.
// https://sonarr.tv/docs/api/
type Sonarr struct {
	client
}

// NewSonarr creates a Sonarr client.
func NewSonarr(baseURL, apiKey string, opts ...Option) (*Sonarr, error) {
	c, err := newClient("sonarr", baseURL, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Sonarr{client: c}, nil
}

// SeriesByTVDBID returns every library entry for a TVDB id.
func (s *Sonarr) SeriesByTVDBID(ctx context.Context, tvdbID string) ([]Series, error) {
	query := url.Values{}
	query.Set("tvdbId", tvdbID)

	var series []Series
	if err := s.do(ctx, http.MethodGet, "/series", query, nil, &series); err != nil {
		return nil, err
	}
	return series, nil
}

// EpisodesBySeriesID returns all episode records of a series.
func (s *Sonarr) EpisodesBySeriesID(ctx context.Context, seriesID int64) ([]Episode, error) {
	query := url.Values{}
	query.Set("seriesId", strconv.FormatInt(seriesID, 10))

	var episodes []Episode
	if err := s.do(ctx, http.MethodGet, "/episode", query, nil, &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// Tags lists all Sonarr tags.
func (s *Sonarr) Tags(ctx context.Context) ([]Tag, error) {
	return s.tags(ctx)
}

// DeleteSeries removes a series and its files.
func (s *Sonarr) DeleteSeries(ctx context.Context, id int64) error {
	query := url.Values{}
	query.Set("deleteFiles", "true")
	return s.do(ctx, http.MethodDelete, "/series/"+strconv.FormatInt(id, 10), query, nil, nil)
}

// History returns grab-event history records for the given series ids.
func (s *Sonarr) History(ctx context.Context, seriesIDs []int64) ([]HistoryRecord, error) {
	return s.history(ctx, "seriesIds", seriesIDs)
}

// episodesMonitor is the PUT /episode/monitor request body.
type episodesMonitor struct {
	EpisodeIDs []int64 `json:"episodeIds"`
	Monitored  bool    `json:"monitored"`
}

// UnmonitorEpisodes clears the monitored flag on the given episodes.
func (s *Sonarr) UnmonitorEpisodes(ctx context.Context, ids []int64) error {
	body := episodesMonitor{EpisodeIDs: ids, Monitored: false}
	return s.do(ctx, http.MethodPut, "/episode/monitor", nil, body, nil)
}

// UnmonitorEpisode clears the monitored flag on a single episode. Used
// by episode deletion, where unmonitoring must commit before the file
// delete is issued.
func (s *Sonarr) UnmonitorEpisode(ctx context.Context, id int64) error {
	return s.UnmonitorEpisodes(ctx, []int64{id})
}

// DeleteEpisodeFile removes one episode file from disk.
func (s *Sonarr) DeleteEpisodeFile(ctx context.Context, fileID int64) error {
	return s.do(ctx, http.MethodDelete, "/episodefile/"+strconv.FormatInt(fileID, 10), nil, nil, nil)
}
