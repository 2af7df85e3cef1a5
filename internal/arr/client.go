// Package arr provides clients for the Radarr and Sonarr v3 APIs.
// Both speak the same dialect (X-Api-Key auth, /api/v3 base, paged
// history), so the request plumbing is shared.
package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const historyPageSize = 100

// grabEventType is the manager's numeric code for "grabbed" history
// events, the only kind that carries a download id.
const grabEventType = "1"

type client struct {
	name       string
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Radarr or Sonarr client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *client) {
		c.log = log.With("component", c.name)
	}
}

func newClient(name, baseURL, apiKey string, opts ...Option) (client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return client{}, fmt.Errorf("parse %s base url: %w", name, err)
	}
	u.Path = "/api/v3"

	c := client{
		name:    name,
		baseURL: u,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// do performs an authenticated request and decodes the JSON response
// into out (which may be nil for mutation calls).
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = u.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request body: %w", c.name, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request %s %s: %w", c.name, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s request %s %s failed: %s: %s",
			c.name, method, path, resp.Status, strings.TrimSpace(string(respBody)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response %s: %w", c.name, path, err)
	}
	return nil
}

// tags lists all tags.
func (c *client) tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tag", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// history pages through grab-event history records for the given entity
// ids. idParam is "movieIds" for Radarr, "seriesIds" for Sonarr.
func (c *client) history(ctx context.Context, idParam string, ids []int64) ([]HistoryRecord, error) {
	base := url.Values{}
	for _, id := range ids {
		base.Add(idParam, strconv.FormatInt(id, 10))
	}
	base.Set("pageSize", strconv.Itoa(historyPageSize))
	base.Set("eventType", grabEventType)

	var records []HistoryRecord
	for page := 1; ; page++ {
		query := url.Values{}
		for k, v := range base {
			query[k] = v
		}
		query.Set("page", strconv.Itoa(page))

		var resp historyPage
		if err := c.do(ctx, http.MethodGet, "/history", query, nil, &resp); err != nil {
			return nil, err
		}
		if len(resp.Records) == 0 {
			break
		}
		records = append(records, resp.Records...)
	}

	if c.log != nil {
		c.log.Debug("fetched history", "ids", len(ids), "records", len(records))
	}
	return records, nil
}
