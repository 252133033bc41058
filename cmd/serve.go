package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kcvvelewijt/clubsite-api/api"
	"github.com/kcvvelewijt/clubsite-api/api/types"
	"github.com/kcvvelewijt/clubsite-api/internal/services/cache"
	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
	"github.com/kcvvelewijt/clubsite-api/internal/services/search"
	"github.com/kcvvelewijt/clubsite-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the club site API server with the configured settings.

Example:
  clubsite-api serve
  clubsite-api serve --port 9090
  clubsite-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Wire the service graph: CMS client -> collection fetcher -> search service.
	cmsClient := cms.NewClient(cms.Config{
		BaseURL:     cfg.CMS.BaseURL,
		AccessToken: cfg.CMS.AccessToken,
		Timeout:     cfg.CMS.Timeout,
	})

	peopleCache := cache.NewMemoryCache()
	defer peopleCache.Stop()

	fetcher := search.NewCollectionFetcher(cmsClient, search.FetcherOptions{
		PageSize:       cfg.CMS.PageSize,
		MaxPages:       cfg.CMS.MaxPages,
		PeopleCache:    peopleCache,
		PeopleCacheTTL: cfg.CMS.PeopleCacheTTL,
	})

	deps := &types.Dependencies{
		SearchService: search.NewService(fetcher),
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	srv := api.NewServer(address)
	srv.SetDependencies(deps)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	log.Info().Str("address", address).Msg("starting club site API server")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Info().Msg("shutting down server")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server gracefully stopped")
	return nil
}
