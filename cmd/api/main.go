package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pricecompare/internal/catalog"
	"pricecompare/internal/config"
	"pricecompare/internal/logging"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, logger *zap.Logger) error {
	src, closeSrc, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	store, err := catalog.Load(ctx, src)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.String("source", cfg.CatalogSource), zap.Int("products", store.Len()))

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	logger.Info("server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("env", cfg.AppEnv),
		zap.String("test_url", fmt.Sprintf("http://localhost:%s/api/test", cfg.Port)),
	)
	return serve(ctx, newServer(cfg, store, logger), ln, cfg.ShutdownTimeout, logger)
}

func newServer(cfg config.Server, repo catalog.Repository, logger *zap.Logger) *http.Server {
	handler := catalog.NewHTTPHandler(catalog.NewService(repo))
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      catalog.NewRouter(handler, logger, catalog.RouterOptions{EnableHSTS: cfg.EnableHSTS}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(logger),
	}
}

// serve runs srv on ln until ctx is done, then drains in-flight requests for
// at most timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func openSource(ctx context.Context, cfg config.Server, logger *zap.Logger) (catalog.Source, func(), error) {
	if cfg.CatalogSource != config.SourcePostgres {
		return catalog.SeedSource{}, func() {}, nil
	}
	pool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database connection OK", zap.String("dsn", redactDSN(cfg.DatabaseDSN)))
	return catalog.NewPostgresSource(pool), pool.Close, nil
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
	}
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
