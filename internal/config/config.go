// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Username        string                `toml:"username"`
	LogLevel        string                `toml:"log_level"`
	Jellyfin        JellyfinConfig        `toml:"jellyfin"`
	Radarr          LibraryConfig         `toml:"radarr"`
	Sonarr          LibraryConfig         `toml:"sonarr"`
	DownloadClients DownloadClientsConfig `toml:"download_clients"`
}

type JellyfinConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// LibraryConfig configures one library manager (Radarr or Sonarr).
type LibraryConfig struct {
	BaseURL         string    `toml:"base_url"`
	APIKey          string    `toml:"api_key"`
	RetentionPeriod *Duration `toml:"retention_period"`
	TagsToKeep      []string  `toml:"tags_to_keep"`
	Unmonitor       bool      `toml:"unmonitor"`
}

type DownloadClientsConfig struct {
	Qbittorrent *QbittorrentConfig `toml:"qbittorrent"`
	Deluge      *DelugeConfig      `toml:"deluge"`
}

type QbittorrentConfig struct {
	BaseURL  string `toml:"base_url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type DelugeConfig struct {
	BaseURL  string `toml:"base_url"`
	Password string `toml:"password"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
