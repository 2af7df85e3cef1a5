package torrent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const delugeSessionCookie = "_session_id"

// Deluge is a client for the Deluge WebUI JSON-RPC API.
type Deluge struct {
	baseURL    *url.URL
	cookie     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewDeluge authenticates with the password-only login method and
// returns a client holding the session cookie.
func NewDeluge(ctx context.Context, baseURL, password string, opts ...Option) (*Deluge, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse deluge base url: %w", err)
	}
	u.Path = "/json"

	cfg := applyOptions(opts)
	if cfg.log != nil {
		cfg.log = cfg.log.With("component", "deluge")
	}

	d := &Deluge{
		baseURL:    u,
		httpClient: cfg.httpClient,
		log:        cfg.log,
	}

	resp, err := d.post(ctx, rpcRequest{Method: "auth.login", Params: []any{password}, ID: 1}, false)
	if err != nil {
		return nil, fmt.Errorf("deluge login: %w", err)
	}
	var ok bool
	if err := json.Unmarshal(resp.result, &ok); err != nil || !ok {
		return nil, fmt.Errorf("deluge login rejected")
	}
	if resp.sessionCookie == "" {
		return nil, fmt.Errorf("deluge login response missing %s cookie", delugeSessionCookie)
	}
	d.cookie = delugeSessionCookie + "=" + resp.sessionCookie

	return d, nil
}

// ListTransfers returns the names of transfers known for the hashes.
func (d *Deluge) ListTransfers(ctx context.Context, hashes []string) ([]string, error) {
	req := rpcRequest{
		Method: "core.get_torrents_status",
		Params: []any{
			map[string]any{"id": lowerHashes(hashes)},
			[]string{"name", "state"},
		},
		ID: 1,
	}
	resp, err := d.post(ctx, req, true)
	if err != nil {
		return nil, err
	}
	if len(resp.result) == 0 || string(resp.result) == "null" {
		return nil, nil
	}

	var torrents map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp.result, &torrents); err != nil {
		return nil, fmt.Errorf("decode deluge torrent list: %w", err)
	}

	names := make([]string, 0, len(torrents))
	for _, t := range torrents {
		names = append(names, t.Name)
	}
	return names, nil
}

// DeleteTransfers removes the transfers and their files.
func (d *Deluge) DeleteTransfers(ctx context.Context, hashes []string) error {
	req := rpcRequest{
		Method: "core.remove_torrents",
		Params: []any{lowerHashes(hashes), true},
		ID:     1,
	}
	_, err := d.post(ctx, req, true)
	return err
}

// lowerHashes lowercases transfer hashes. Radarr and Sonarr report them
// uppercased; Deluge only accepts lowercase.
func lowerHashes(hashes []string) []string {
	out := make([]string, len(hashes))
	for i, h := range hashes {
		out[i] = strings.ToLower(h)
	}
	return out
}

type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     int    `json:"id"`
}

type rpcError struct {
	Message string `json:"message"`
	Code    int64  `json:"code"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcResult struct {
	result        json.RawMessage
	sessionCookie string
}

// post submits one JSON-RPC call. A non-null error member or a literal
// false result are both failures.
func (d *Deluge) post(ctx context.Context, rpc rpcRequest, authed bool) (*rpcResult, error) {
	body, err := json.Marshal(rpc)
	if err != nil {
		return nil, fmt.Errorf("marshal deluge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Cookie", d.cookie)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deluge call %s: %w", rpc.Method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deluge call %s failed: %s", rpc.Method, resp.Status)
	}

	var envelope rpcEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode deluge response: %w", err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("deluge call %s: %s (error code %d)", rpc.Method, envelope.Error.Message, envelope.Error.Code)
	}
	if string(envelope.Result) == "false" {
		return nil, fmt.Errorf("deluge call %s returned falsy response", rpc.Method)
	}

	result := &rpcResult{result: envelope.Result}
	for _, cookie := range resp.Cookies() {
		if strings.EqualFold(cookie.Name, delugeSessionCookie) {
			result.sessionCookie = cookie.Value
			break
		}
	}
	return result, nil
}
