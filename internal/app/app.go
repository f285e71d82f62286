package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/digimon/internal/config"
	"github.com/GlebRadaev/digimon/internal/handlers"
	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/GlebRadaev/digimon/internal/repo"
	"github.com/GlebRadaev/digimon/internal/service"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	group *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	tokens := auth.NewJWTService(cfg.JWTSecret)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, &auth.HashService{}, tokens, cfg.TokenTTL)
	a.api = handlers.New(a.srv, tokens, cfg)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.startHTTPServer(ctx, router)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// startHTTPServer serves handler until ctx is done or the listener fails,
// whichever comes first.
func (a *Application) startHTTPServer(ctx context.Context, handler http.Handler) {
	group, gctx := errgroup.WithContext(ctx)
	a.group = group

	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group.Go(func() error {
		<-gctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error
	if a.group != nil {
		appErr = a.group.Wait()
	} else {
		<-ctx.Done()
	}
	cancel()

	if appErr != nil {
		zap.L().Error(appErr.Error())
	}
	if a.pool != nil {
		a.pool.Close()
	}
	a.ready = false
	return appErr
}
