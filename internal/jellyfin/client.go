package jellyfin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/sweeparr/internal/match"
)

// ErrUserNotFound is returned when no Jellyfin user has the requested name.
var ErrUserNotFound = errors.New("user not found")

// Client is a Jellyfin API client authenticated with an API key.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "jellyfin")
	}
}

// New creates a Jellyfin client for the given server.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse jellyfin base url: %w", err)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Items returns all items matching the filter.
// https://api.jellyfin.org/#tag/Items
func (c *Client) Items(ctx context.Context, filter ItemsFilter) ([]Item, error) {
	var resp itemsResponse
	if err := c.get(ctx, "/Items", filter.Values(), &resp); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Debug("queried items", "count", len(resp.Items))
	}
	return resp.Items, nil
}

// Users returns all user accounts.
// https://api.jellyfin.org/#tag/User
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/Users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByName resolves a username to a user record. The error for an
// unknown name suggests the closest existing account, since a config
// typo is the usual cause.
func (c *Client) UserByName(ctx context.Context, name string) (*User, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Name == name {
			return &users[i], nil
		}
	}

	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	if closest, ok := match.Closest(name, names); ok {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUserNotFound, name, closest)
	}
	return nil, fmt.Errorf("%w: %q", ErrUserNotFound, name)
}

// get performs an authenticated GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "MediaBrowser Token="+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jellyfin request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("jellyfin request %s failed: %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode jellyfin response %s: %w", path, err)
	}
	return nil
}
