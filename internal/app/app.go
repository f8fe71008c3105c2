package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/apetrini/todolist-backend/internal/adapter/postgres"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/item"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/list"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/session"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/user"
	tokenauth "github.com/apetrini/todolist-backend/internal/auth"
	"github.com/apetrini/todolist-backend/internal/config"
	authsvc "github.com/apetrini/todolist-backend/internal/service/auth"
	todosvc "github.com/apetrini/todolist-backend/internal/service/todo"
	"github.com/apetrini/todolist-backend/internal/transport/middleware"
	"github.com/apetrini/todolist-backend/internal/transport/rest"
	"github.com/apetrini/todolist-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, wires services and transport,
// and serves HTTP until the process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	userRepo := user.New(pool)
	sessionRepo := session.New(pool)
	listRepo := list.New(pool)
	itemRepo := item.New(pool)
	txManager := postgres.NewTxManager(pool)
	tokenManager := tokenauth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer)

	authService := authsvc.NewService(logger, userRepo, sessionRepo, tokenManager, txManager, cfg.Auth)
	todoService := todosvc.NewService(logger, listRepo, itemRepo, txManager)

	var authLimit middleware.Middleware
	if cfg.Auth.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.Auth.RateLimitPerMinute, time.Minute)
		defer limiter.Stop()
		authLimit = limiter.Limit()
	}

	router := rest.NewRouter(rest.RouterConfig{
		Auth:   rest.NewAuthHandler(authService, logger),
		Todo:   rest.NewTodoHandler(todoService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Base: middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
		),
		AuthLimit: authLimit,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// migrate applies any pending goose migrations from the embedded FS.
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	// goose requires *sql.DB.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close() //nolint:errcheck

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied", slog.String("source", r.Source.Path))
	}

	return nil
}
