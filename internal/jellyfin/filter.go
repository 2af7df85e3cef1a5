package jellyfin

import (
	"net/url"
	"strconv"
	"strings"
)

// ItemsFilter builds query parameters for GET /Items.
// https://api.jellyfin.org/#tag/Items/operation/GetItems
type ItemsFilter struct {
	userID     string
	ids        []string
	itemTypes  []string
	fields     []string
	recursive  bool
	isPlayed   *bool
	isFavorite *bool
}

// NewFilter returns an empty filter.
func NewFilter() ItemsFilter {
	return ItemsFilter{}
}

// Watched is the filter every cleanup query starts from: recursive,
// played, non-favorite, with provider ids requested.
func Watched() ItemsFilter {
	return NewFilter().
		Recursive().
		Played().
		Favorite(false).
		Fields("ProviderIds")
}

func (f ItemsFilter) UserID(id string) ItemsFilter {
	f.userID = id
	return f
}

func (f ItemsFilter) IDs(ids ...string) ItemsFilter {
	f.ids = ids
	return f
}

func (f ItemsFilter) IncludeItemTypes(types ...string) ItemsFilter {
	f.itemTypes = types
	return f
}

func (f ItemsFilter) Fields(fields ...string) ItemsFilter {
	f.fields = fields
	return f
}

func (f ItemsFilter) Recursive() ItemsFilter {
	f.recursive = true
	return f
}

func (f ItemsFilter) Played() ItemsFilter {
	t := true
	f.isPlayed = &t
	return f
}

func (f ItemsFilter) Favorite(v bool) ItemsFilter {
	f.isFavorite = &v
	return f
}

// Values serializes the filter. List parameters are comma-separated as
// the Jellyfin API expects.
func (f ItemsFilter) Values() url.Values {
	v := url.Values{}
	if f.userID != "" {
		v.Set("userId", f.userID)
	}
	if len(f.ids) > 0 {
		v.Set("ids", strings.Join(f.ids, ","))
	}
	if len(f.itemTypes) > 0 {
		v.Set("includeItemTypes", strings.Join(f.itemTypes, ","))
	}
	if len(f.fields) > 0 {
		v.Set("fields", strings.Join(f.fields, ","))
	}
	if f.recursive {
		v.Set("recursive", "true")
	}
	if f.isPlayed != nil {
		v.Set("isPlayed", strconv.FormatBool(*f.isPlayed))
	}
	if f.isFavorite != nil {
		v.Set("isFavorite", strconv.FormatBool(*f.isFavorite))
	}
	return v
}
