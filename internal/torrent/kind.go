// Package torrent talks to the download clients referenced by library
// manager history. The set of supported kinds is closed; each kind owns
// its own wire quirks, including how transfer hashes must be cased.
package torrent

import "strings"

// Kind identifies a download client implementation.
type Kind string

const (
	KindQbittorrent Kind = "qbittorrent"
	KindDeluge      Kind = "deluge"
)

// ParseKind maps a manager-reported download client name to a Kind.
// Managers report display names ("qBittorrent", "Deluge"); comparison is
// case-insensitive. Unknown names are preserved lowercased so they can
// be reported, just never served.
func ParseKind(name string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(name)))
}

func (k Kind) String() string {
	switch k {
	case KindQbittorrent:
		return "qBittorrent"
	case KindDeluge:
		return "Deluge"
	default:
		return string(k)
	}
}
