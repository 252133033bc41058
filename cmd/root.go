package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kcvvelewijt/clubsite-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clubsite-api",
	Short: "KCVV club site API server",
	Long: `KCVV Club Site API - backend for the club website search feature.

Fans a search query out across the CMS content collections (articles,
people, teams), merges the matches into one relevance-ranked list and
serves the result over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig initializes viper-backed configuration and the global logger.
// Called lazily by commands that need it.
func loadConfig(cmd *cobra.Command) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	levelStr, _ := cmd.Flags().GetString("log-level")
	if levelStr == "" {
		levelStr = config.GetString("logging.level")
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Level(level)

	return nil
}
