package torrent

import (
	"context"
	"log/slog"

	"github.com/vmunix/sweeparr/internal/config"
)

// Client is the capability every download client kind provides: list
// and delete transfers by hash. Hash-case normalization is each
// implementation's own concern.
type Client interface {
	ListTransfers(ctx context.Context, hashes []string) ([]string, error)
	DeleteTransfers(ctx context.Context, hashes []string) error
}

// Service routes transfer operations to the configured client of each
// kind. Hashes for an unconfigured kind are reported and skipped, never
// fatal: the manager may reference clients this tool doesn't manage.
type Service struct {
	clients map[Kind]Client
	log     *slog.Logger
}

// NewService builds clients for every configured download client kind.
// Construction authenticates each client, so a bad credential fails the
// run up front rather than mid-deletion.
func NewService(ctx context.Context, cfg config.DownloadClientsConfig, log *slog.Logger, opts ...Option) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}
	clients := make(map[Kind]Client)

	if qb := cfg.Qbittorrent; qb != nil {
		client, err := NewQbittorrent(ctx, qb.BaseURL, qb.Username, qb.Password, opts...)
		if err != nil {
			return nil, err
		}
		clients[KindQbittorrent] = client
	}
	if dl := cfg.Deluge; dl != nil {
		client, err := NewDeluge(ctx, dl.BaseURL, dl.Password, opts...)
		if err != nil {
			return nil, err
		}
		clients[KindDeluge] = client
	}

	return &Service{clients: clients, log: log}, nil
}

// NewServiceWithClients builds a service from prebuilt clients.
func NewServiceWithClients(clients map[Kind]Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{clients: clients, log: log}
}

// List logs the transfer names behind the given hashes, per kind. Used
// by dry runs to show what force-delete would remove.
func (s *Service) List(ctx context.Context, hashes map[Kind][]string) error {
	for kind, kindHashes := range hashes {
		client, ok := s.clients[kind]
		if !ok {
			s.log.Error("no download client configured for kind, cannot list transfers",
				"kind", kind.String(), "hashes", len(kindHashes))
			continue
		}
		names, err := client.ListTransfers(ctx, kindHashes)
		if err != nil {
			return err
		}
		s.log.Info("transfers eligible for deletion", "kind", kind.String(), "names", names)
	}
	return nil
}

// Delete removes the transfers (and their files) behind the given
// hashes, per kind. Hashes the client no longer knows are skipped.
func (s *Service) Delete(ctx context.Context, hashes map[Kind][]string) error {
	for kind, kindHashes := range hashes {
		client, ok := s.clients[kind]
		if !ok {
			s.log.Error("no download client configured for kind, cannot delete transfers",
				"kind", kind.String(), "hashes", len(kindHashes))
			continue
		}
		names, err := client.ListTransfers(ctx, kindHashes)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			s.log.Debug("no transfers to delete for kind", "kind", kind.String())
			continue
		}
		if err := client.DeleteTransfers(ctx, kindHashes); err != nil {
			return err
		}
		s.log.Info("deleted transfers", "kind", kind.String(), "names", names)
	}
	return nil
}
