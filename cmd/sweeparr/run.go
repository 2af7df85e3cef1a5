package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vmunix/sweeparr/internal/arr"
	"github.com/vmunix/sweeparr/internal/cleanup"
	"github.com/vmunix/sweeparr/internal/config"
	"github.com/vmunix/sweeparr/internal/jellyfin"
	"github.com/vmunix/sweeparr/internal/torrent"
)

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q, must be one of debug, info, warn, error", s)
}

func run(ctx context.Context, configPath string, forceDelete bool, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(problems, "\n  - "))
	}

	// Flag beats environment beats config file.
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	if !forceDelete {
		logger.Info("running in dry-run mode, pass --force-delete to delete")
	}

	jf, err := jellyfin.New(cfg.Jellyfin.BaseURL, cfg.Jellyfin.APIKey, jellyfin.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("jellyfin: %w", err)
	}
	user, err := jf.UserByName(ctx, cfg.Username)
	if err != nil {
		return err
	}

	radarr, err := arr.NewRadarr(cfg.Radarr.BaseURL, cfg.Radarr.APIKey, arr.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("radarr: %w", err)
	}
	sonarr, err := arr.NewSonarr(cfg.Sonarr.BaseURL, cfg.Sonarr.APIKey, arr.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("sonarr: %w", err)
	}

	transfers, err := torrent.NewService(ctx, cfg.DownloadClients, logger, torrent.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("download clients: %w", err)
	}

	movies := cleanup.NewMovieCleaner(jf, radarr, transfers, cfg.Radarr, user.ID, logger)
	series := cleanup.NewSeriesCleaner(jf, sonarr, transfers, cfg.Sonarr, user.ID, logger)
	episodes := cleanup.NewEpisodeCleaner(jf, sonarr, cfg.Sonarr, user.ID, logger)

	// A failing pass does not stop the others; any failure fails the run.
	var errs []error
	if err := movies.Cleanup(ctx, forceDelete); err != nil {
		logger.Error("movie cleanup failed", "error", err)
		errs = append(errs, fmt.Errorf("movies: %w", err))
	}
	if err := series.Cleanup(ctx, forceDelete); err != nil {
		logger.Error("series cleanup failed", "error", err)
		errs = append(errs, fmt.Errorf("series: %w", err))
	}
	if err := episodes.Cleanup(ctx, forceDelete); err != nil {
		logger.Error("episode cleanup failed", "error", err)
		errs = append(errs, fmt.Errorf("episodes: %w", err))
	}
	return errors.Join(errs...)
}
