package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/api"
	"github.com/seo-optimizer/backend/config"
	"github.com/seo-optimizer/backend/logging"
	"github.com/seo-optimizer/backend/metrics"
	"github.com/seo-optimizer/backend/middleware"
	"github.com/seo-optimizer/backend/scoring"
	"github.com/seo-optimizer/backend/stats"
)

const (
	shutdownTimeout  = 10 * time.Second
	housekeeping     = time.Hour
	clientIdleWindow = 30 * time.Minute
	retainMonths     = 1
)

// NewServeCmd runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis API server",
		Long: `Run the HTTP API serving live analysis, suggestions and channel previews.

Settings are read from the optional YAML file given by --config or SEO_CONFIG,
then from .env.development or .env, then from the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	return cmd
}

func loadConfig(path string) (config.Config, *zap.Logger, error) {
	envFile := config.LoadDotEnv()

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return config.Config{}, nil, err
	}
	if envFile == "" {
		logger.Debug("no .env file found, using environment variables")
	} else {
		logger.Debug("loaded environment file", zap.String("file", envFile))
	}
	return cfg, logger, nil
}

// newScorer picks the scorer named by the configuration.
func newScorer(cfg config.ScoringConfig, logger *zap.Logger) analyzer.Scorer {
	if cfg.Provider == config.ProviderRemote {
		return scoring.NewRemote(cfg.Endpoint, cfg.Timeout, logger.Named("scoring"))
	}
	return scoring.NewHTML()
}

func runServe(ctx context.Context, configPath string) error {
	cfg, logger, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.GinMode)

	storage, err := stats.NewStorage(cfg.Server.DataDir, logger.Named("stats"))
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Warn("failed to flush statistics", zap.Error(err))
		}
	}()

	m := metrics.New()
	seoAnalyzer := analyzer.New(newScorer(cfg.Scoring, logger), analyzer.Options{
		MinContentLength: cfg.Analysis.MinContentLength,
		CacheCapacity:    cfg.Analysis.CacheCapacity,
		Logger:           logger.Named("analyzer"),
		Recorders:        []analyzer.Recorder{storage, m},
	})
	m.TrackCache(seoAnalyzer.Cache())

	statistics := logging.NewStatistics(cfg.Server.DevMode)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, logger.Named("ratelimit"))

	router := api.NewRouter(api.Deps{
		Analyzer:    seoAnalyzer,
		Statistics:  statistics,
		Storage:     storage,
		Metrics:     m,
		RateLimiter: limiter,
		Logger:      logger.Named("api"),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go runHousekeeping(ctx, limiter, statistics, storage, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("scoring_provider", cfg.Scoring.Provider),
			zap.Int("cache_capacity", cfg.Analysis.CacheCapacity))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func runHousekeeping(ctx context.Context, limiter *middleware.RateLimiter, statistics *logging.Statistics, storage *stats.Storage, logger *zap.Logger) {
	ticker := time.NewTicker(housekeeping)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed := limiter.Prune(clientIdleWindow)
			statistics.Prune(now.Add(-24 * time.Hour))
			storage.Cleanup(retainMonths)
			logger.Debug("housekeeping completed", zap.Int("idle_clients_removed", removed))
		}
	}
}
