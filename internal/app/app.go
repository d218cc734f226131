package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/assignment"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/crimetype"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/department"
	reportrepo "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/statusupdate"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/team"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/crimewatch-backend/internal/auth"
	"github.com/heartmarshall/crimewatch-backend/internal/config"
	"github.com/heartmarshall/crimewatch-backend/internal/metrics"
	authsvc "github.com/heartmarshall/crimewatch-backend/internal/service/auth"
	"github.com/heartmarshall/crimewatch-backend/internal/service/directory"
	"github.com/heartmarshall/crimewatch-backend/internal/service/emergency"
	"github.com/heartmarshall/crimewatch-backend/internal/service/report"
	"github.com/heartmarshall/crimewatch-backend/internal/service/stats"
	usersvc "github.com/heartmarshall/crimewatch-backend/internal/service/user"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
	"github.com/heartmarshall/crimewatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/crimewatch-backend/internal/transport/rest"
	"github.com/heartmarshall/crimewatch-backend/migrations"
)

// Options tweak Run from the command line.
type Options struct {
	// Migrate applies pending migrations before serving, in addition to
	// server.auto_migrate.
	Migrate bool
}

// Run loads configuration, connects to PostgreSQL, wires every service and
// serves the API until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if opts.Migrate || cfg.Server.AutoMigrate {
		if err := migrate(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	var m *metrics.Metrics
	if !cfg.Metrics.Disabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, pool, m, limiter)
	if err != nil {
		return err
	}

	return serve(ctx, cfg.Server, logger, handler)
}

func migrate(ctx context.Context, logger *slog.Logger, dsn string) error {
	migrator, err := postgres.NewMigrator(dsn, migrations.FS)
	if err != nil {
		return fmt.Errorf("app: migrator: %w", err)
	}
	defer migrator.Close()

	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("app: migrate: %w", err)
	}

	for _, r := range applied {
		logger.Info("migration applied",
			slog.Int64("version", r.Version),
			slog.String("source", r.Source),
			slog.String("duration", r.Duration),
		)
	}
	return nil
}

// newHandler builds repositories, services and the HTTP router.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) (http.Handler, error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := token.New(pool)
	departments := department.New(pool)
	crimeTypes := crimetype.New(pool)
	teams := team.New(pool)
	reports := reportrepo.New(pool)
	history := statusupdate.New(pool)
	assignments := assignment.New(pool)
	alerts := alert.New(pool)

	authz, err := visibility.NewAuthorizer()
	if err != nil {
		return nil, fmt.Errorf("app: authorizer: %w", err)
	}
	policies := visibility.NewResolver(logger, users, departments, authz, cfg.Geo.ProximityDegrees)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, cfg.Auth)
	userService := usersvc.NewService(logger, users, departments, teams, txm)
	reportService := report.NewService(logger, policies, reports, history, assignments, teams, crimeTypes, txm, m)
	statsService := stats.NewService(logger, policies, reports)
	alertService := emergency.NewService(logger, policies, alerts, m)
	directoryService := directory.NewService(logger, policies, departments, crimeTypes, teams)

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(BuildVersion(), rest.PingCheck("database", pool)),
		Auth:      rest.NewAuthHandler(authService, userService, logger),
		Reports:   rest.NewReportHandler(reportService, statsService, logger),
		Emergency: rest.NewEmergencyHandler(alertService, logger),
		Directory: rest.NewDirectoryHandler(directoryService, logger),
	}

	var observe middleware.Middleware
	if m != nil {
		observe = middleware.Metrics(m)
		handlers.Metrics = poolStatsHandler(m, pool)
	}

	return rest.NewRouter(handlers, rest.Middlewares{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			observe,
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
		},
		AuthLimit:  limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		AlertLimit: limiter.Limit("alerts", cfg.RateLimit.AlertsPerMinute),
	}), nil
}

// poolStatsHandler samples pgxpool statistics on every scrape.
func poolStatsHandler(m *metrics.Metrics, pool *pgxpool.Pool) http.Handler {
	next := m.Handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.RecordDBPoolStats(pool.Stat())
		next.ServeHTTP(w, r)
	})
}

func serve(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
