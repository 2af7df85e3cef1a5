package torrent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Qbittorrent is a client for the qBittorrent WebUI API v2.
// https://github.com/qbittorrent/qBittorrent/wiki/WebUI-API-(qBittorrent-4.1)
type Qbittorrent struct {
	baseURL    *url.URL
	sidCookie  string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a download client.
type Option func(*clientConfig)

type clientConfig struct {
	httpClient *http.Client
	log        *slog.Logger
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *clientConfig) {
		c.log = log
	}
}

func applyOptions(opts []Option) clientConfig {
	cfg := clientConfig{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewQbittorrent authenticates against the WebUI and returns a client
// holding the session cookie.
func NewQbittorrent(ctx context.Context, baseURL, username, password string, opts ...Option) (*Qbittorrent, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse qbittorrent base url: %w", err)
	}
	u.Path = "/api/v2"

	cfg := applyOptions(opts)
	if cfg.log != nil {
		cfg.log = cfg.log.With("component", "qbittorrent")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String()+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := cfg.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qbittorrent login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qbittorrent login failed: %s", resp.Status)
	}

	var sid string
	for _, cookie := range resp.Cookies() {
		if strings.EqualFold(cookie.Name, "sid") {
			sid = cookie.Value
			break
		}
	}
	if sid == "" {
		return nil, fmt.Errorf("qbittorrent login response missing SID cookie")
	}

	return &Qbittorrent{
		baseURL:    u,
		sidCookie:  "SID=" + sid,
		httpClient: cfg.httpClient,
		log:        cfg.log,
	}, nil
}

// ListTransfers returns the names of transfers known for the hashes.
func (q *Qbittorrent) ListTransfers(ctx context.Context, hashes []string) ([]string, error) {
	query := url.Values{}
	query.Set("hashes", joinHashes(hashes))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.baseURL.String()+"/torrents/info?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cookie", q.sidCookie)

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qbittorrent list transfers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("qbittorrent list transfers failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var torrents []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&torrents); err != nil {
		return nil, fmt.Errorf("decode qbittorrent response: %w", err)
	}

	names := make([]string, len(torrents))
	for i, t := range torrents {
		names[i] = t.Name
	}
	return names, nil
}

// DeleteTransfers removes the transfers and their files.
func (q *Qbittorrent) DeleteTransfers(ctx context.Context, hashes []string) error {
	form := url.Values{}
	form.Set("hashes", joinHashes(hashes))
	form.Set("deleteFiles", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.baseURL.String()+"/torrents/delete", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", q.sidCookie)

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("qbittorrent delete transfers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("qbittorrent delete transfers failed: %s", resp.Status)
	}
	return nil
}

// joinHashes builds the bar-separated hashes parameter. An empty set
// becomes the literal "none": an empty hashes parameter would make the
// WebUI return every torrent.
func joinHashes(hashes []string) string {
	if len(hashes) == 0 {
		return "none"
	}
	return strings.Join(hashes, "|")
}
