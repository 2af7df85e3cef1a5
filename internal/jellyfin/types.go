// Package jellyfin provides a client for the Jellyfin server API, scoped
// to the item and user queries cleanup needs.
package jellyfin

import "time"

// Item is a Jellyfin library item (movie, series, or episode).
// Jellyfin serializes fields in PascalCase.
type Item struct {
	ID          string       `json:"Id"`
	Name        string       `json:"Name"`
	SeriesID    string       `json:"SeriesId,omitempty"`
	SeriesName  string       `json:"SeriesName,omitempty"`
	SeasonNum   *int         `json:"ParentIndexNumber,omitempty"`
	EpisodeNum  *int         `json:"IndexNumber,omitempty"`
	ProviderIDs *ProviderIDs `json:"ProviderIds,omitempty"`
	UserData    *UserData    `json:"UserData,omitempty"`
}

// ProviderIDs holds external catalog identifiers. These, not Jellyfin's
// own item ids, are what cross-reference an item to a library manager.
type ProviderIDs struct {
	TMDB string `json:"Tmdb,omitempty"`
	TVDB string `json:"Tvdb,omitempty"`
}

// UserData holds per-user playback state for an item.
type UserData struct {
	Played         bool       `json:"Played"`
	IsFavorite     bool       `json:"IsFavorite"`
	LastPlayedDate *time.Time `json:"LastPlayedDate,omitempty"`
}

// TMDBID returns the movie catalog id, or "" if absent.
func (i *Item) TMDBID() string {
	if i.ProviderIDs == nil {
		return ""
	}
	return i.ProviderIDs.TMDB
}

// TVDBID returns the series catalog id, or "" if absent.
func (i *Item) TVDBID() string {
	if i.ProviderIDs == nil {
		return ""
	}
	return i.ProviderIDs.TVDB
}

// Watched reports whether the item is fully played for the user.
func (i *Item) Watched() bool {
	return i.UserData != nil && i.UserData.Played
}

// LastPlayed returns when the item was last played, if known.
func (i *Item) LastPlayed() (time.Time, bool) {
	if i.UserData == nil || i.UserData.LastPlayedDate == nil {
		return time.Time{}, false
	}
	return *i.UserData.LastPlayedDate, true
}

// Ordinals returns the (season, episode) pair for an episode item.
// Either may be absent; matching requires both.
func (i *Item) Ordinals() (season, episode int, ok bool) {
	if i.SeasonNum == nil || i.EpisodeNum == nil {
		return 0, 0, false
	}
	return *i.SeasonNum, *i.EpisodeNum, true
}

// User is a Jellyfin user account.
type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// itemsResponse is the GET /Items envelope.
type itemsResponse struct {
	Items []Item `json:"Items"`
}
