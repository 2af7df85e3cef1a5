package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Username == "" {
		errs = append(errs, "username: required")
	}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	errs = append(errs, checkService("jellyfin", c.Jellyfin.BaseURL, c.Jellyfin.APIKey)...)
	errs = append(errs, checkService("radarr", c.Radarr.BaseURL, c.Radarr.APIKey)...)
	errs = append(errs, checkService("sonarr", c.Sonarr.BaseURL, c.Sonarr.APIKey)...)

	if qb := c.DownloadClients.Qbittorrent; qb != nil {
		if msg := checkURL("download_clients.qbittorrent.base_url", qb.BaseURL); msg != "" {
			errs = append(errs, msg)
		}
		if qb.Username == "" {
			errs = append(errs, "download_clients.qbittorrent.username: required when qbittorrent is configured")
		}
		if qb.Password == "" {
			errs = append(errs, "download_clients.qbittorrent.password: required when qbittorrent is configured")
		}
	}
	if dl := c.DownloadClients.Deluge; dl != nil {
		if msg := checkURL("download_clients.deluge.base_url", dl.BaseURL); msg != "" {
			errs = append(errs, msg)
		}
		if dl.Password == "" {
			errs = append(errs, "download_clients.deluge.password: required when deluge is configured")
		}
	}

	return errs
}

func checkService(name, baseURL, apiKey string) []string {
	var errs []string
	if msg := checkURL(name+".base_url", baseURL); msg != "" {
		errs = append(errs, msg)
	}
	if apiKey == "" {
		errs = append(errs, name+".api_key: required")
	}
	return errs
}

func checkURL(field, raw string) string {
	if raw == "" {
		return field + ": required"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Sprintf("%s: not a valid URL: %q", field, raw)
	}
	return ""
}
