package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kitten/backend/internal/catalog"
	"kitten/backend/internal/config"
	"kitten/backend/internal/db"
	"kitten/backend/internal/handler"
	"kitten/backend/internal/http"
	"kitten/backend/internal/metrics"
	"kitten/backend/internal/quota"
	"kitten/backend/internal/repository"
	"kitten/backend/internal/scheduler"
	"kitten/backend/internal/service"
	"kitten/backend/internal/service/ai"
	"kitten/backend/pkg/logger"
	"kitten/backend/pkg/network"
	"kitten/backend/pkg/snowflake"
)

const (
	shutdownTimeout = 10 * time.Second
	aiClientTimeout = 60 * time.Second
)

func newServeCommand() *cobra.Command {
	var nodeID int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load(), nodeID)
		},
	}
	cmd.Flags().Int64Var(&nodeID, "node-id", 1, "snowflake node id for idea identifiers (0-1023)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, nodeID int64) error {
	logger.InitWithWriter(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.ParseFormat(cfg.LogFormat))

	if err := snowflake.Init(nodeID); err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	sites, err := catalog.Load(cfg.ProxySitesPath)
	if err != nil {
		return fmt.Errorf("load proxy sites: %w", err)
	}

	m := metrics.New(nil)
	clientFactory := network.NewClientFactory(network.StaticProxy(cfg.OutboundProxy))

	proxyService := service.NewProxyService(clientFactory, sites.Policy(), quota.NewDaily(cfg.ProxyDailyLimit), m)
	libraryService := service.NewLibraryService(cfg.LibraryDir)
	siteService := service.NewSiteService(sites, service.NewAzureProber(clientFactory))
	feedbackService := service.NewFeedbackService(repository.NewFeedbackRepository(database))
	syncService := service.NewSyncService(repository.NewSyncRepository(database))
	authService := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret)

	gateway, err := newGateway(ctx, cfg, clientFactory, m)
	if err != nil {
		return err
	}
	aiService := service.NewAIService(gateway, libraryService, m)

	e := http.NewRouter(http.Handlers{
		Proxy:    handler.NewProxyHandler(proxyService),
		Sites:    handler.NewSiteHandler(siteService),
		AI:       handler.NewAIHandler(aiService),
		Games:    handler.NewGamesHandler(libraryService),
		Feedback: handler.NewFeedbackHandler(feedbackService),
		Sync:     handler.NewSyncHandler(syncService),
		Admin:    handler.NewAdminHandler(authService, proxyService, feedbackService),
	}, authService, m, cfg.StaticDir, cfg.EnableSwagger)

	sched := scheduler.New(proxyService, libraryService, cfg.HousekeepingInterval)
	sched.Start()
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "server", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "static_dir", cfg.StaticDir)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("server failed", "module", "server", "action", "start", "resource", "http", "result", "failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "server", "action", "stop", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newGateway returns nil without error when no provider key is set; chat
// then answers with the missing-key message.
func newGateway(ctx context.Context, cfg config.Config, clientFactory *network.ClientFactory, m *metrics.Metrics) (*ai.Gateway, error) {
	provider, err := ai.NewProvider(ai.Config{
		Provider:   cfg.AIProvider,
		APIKey:     cfg.AIAPIKey,
		BaseURL:    cfg.AIBaseURL,
		SiteURL:    cfg.SiteURL,
		HTTPClient: clientFactory.NewHTTPClient(ctx, aiClientTimeout),
	})
	if errors.Is(err, ai.ErrMissingAPIKey) {
		logger.Warn("ai provider key missing, chat disabled", "module", "server", "action", "init", "resource", "ai", "result", "skipped")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ai provider: %w", err)
	}

	return ai.NewGateway(provider, ai.NewRateLimiter(cfg.AIRateLimit), ai.GatewayConfig{
		Models: []string{cfg.AIPrimaryModel, cfg.AIFallbackModel},
	}, m)
}
