package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/postgres"
	gamerepo "github.com/heartmarshall/beetracker-backend/internal/adapter/postgres/game"
	userrepo "github.com/heartmarshall/beetracker-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/beetracker-backend/internal/adapter/provider/ocr"
	"github.com/heartmarshall/beetracker-backend/internal/auth"
	"github.com/heartmarshall/beetracker-backend/internal/config"
	authsvc "github.com/heartmarshall/beetracker-backend/internal/service/auth"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
	"github.com/heartmarshall/beetracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/beetracker-backend/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// Run loads configuration, connects to PostgreSQL, wires services and
// serves HTTP until ctx is cancelled. Pending word writes are flushed
// before it returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ocr_enabled", cfg.OCR.OCREnabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Adapters
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	games := gamerepo.New(pool)
	ocrClient := ocr.NewClient(cfg.OCR.URL, cfg.OCR.Language, cfg.OCR.Timeout, logger)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	authService := authsvc.NewService(logger, users, jwtManager)
	gameService := game.NewService(logger, games, txm, ocrClient, cfg.Game)

	limiter := middleware.NewRateLimiter(limiterCleanupInterval)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		logger:  logger,
		cors:    cfg.CORS,
		limits:  cfg.RateLimit,
		limiter: limiter,
		tokens:  authService,
		health:  rest.NewHealthHandler(BuildVersion(), rest.HealthCheck{Name: "database", Dep: pool}),
		auth:    rest.NewAuthHandler(authService, logger),
		game:    rest.NewGameHandler(gameService, logger, cfg.Game.MaxImageBytes, cfg.OCR.OCREnabled()),
	})

	return serve(ctx, logger, cfg.Server, handler, gameService)
}

// serve runs the HTTP server until ctx is done, then shuts it down and
// closes the game service so queued writes reach the database.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler, gameService *game.Service) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("address", listener.Addr().String()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if err := gameService.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("flush word writes: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
