package arr

import "time"

// Tag is a manager-assigned label. Only the name is stable across
// installs; ids are opaque and per-instance.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Movie is a Radarr library entry.
type Movie struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	HasFile    bool    `json:"hasFile"`
	Monitored  bool    `json:"monitored"`
	SizeOnDisk int64   `json:"sizeOnDisk"`
	Tags       []int64 `json:"tags,omitempty"`
}

// Series is a Sonarr library entry.
type Series struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Tags       []int64          `json:"tags,omitempty"`
	Seasons    []Season         `json:"seasons,omitempty"`
	Statistics SeriesStatistics `json:"statistics"`
}

type SeriesStatistics struct {
	SizeOnDisk int64 `json:"sizeOnDisk"`
}

// Season summarizes one season of a series.
type Season struct {
	SeasonNumber int              `json:"seasonNumber"`
	Monitored    bool             `json:"monitored"`
	Statistics   SeasonStatistics `json:"statistics"`
}

type SeasonStatistics struct {
	NextAiring        *time.Time `json:"nextAiring,omitempty"`
	EpisodeFileCount  int        `json:"episodeFileCount"`
	TotalEpisodeCount int        `json:"totalEpisodeCount"`
}

// Episode is a Sonarr episode record. EpisodeFileID is 0 when no file
// is on disk.
type Episode struct {
	ID            int64 `json:"id"`
	SeriesID      int64 `json:"seriesId"`
	SeasonNumber  int   `json:"seasonNumber"`
	EpisodeNumber int   `json:"episodeNumber"`
	Monitored     bool  `json:"monitored"`
	EpisodeFileID int64 `json:"episodeFileId"`
}

// HistoryRecord is one manager history event. DownloadID carries the
// download client's transfer hash for grab events.
type HistoryRecord struct {
	DownloadID string      `json:"downloadId,omitempty"`
	EventType  string      `json:"eventType,omitempty"`
	Data       HistoryData `json:"data"`
}

// HistoryData is the loosely-typed per-event payload; downloadClient
// names which client performed the grab.
type HistoryData struct {
	DownloadClient string `json:"downloadClient,omitempty"`
}

// historyPage is the paged GET /history envelope.
type historyPage struct {
	Page    int             `json:"page"`
	Records []HistoryRecord `json:"records"`
}
