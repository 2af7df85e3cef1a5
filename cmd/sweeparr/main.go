package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	forceDelete bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "sweeparr",
	Short: "Delete watched items from your *arr stack",
	Long: `sweeparr - delete watched items from your *arr stack

Reconciles Jellyfin watch history against Radarr and Sonarr and removes
media every configured user has finished watching, together with the
download client transfers that fetched it.

Without --force-delete nothing is removed; eligible items are listed
instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), configPath, forceDelete, logLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "Path to config file")
	rootCmd.Flags().BoolVarP(&forceDelete, "force-delete", "d", false, "Perform actual deletion; without it the run is a dry run")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error); defaults to $LOG_LEVEL, then the config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("sweeparr {{.Version}}\n")
}
