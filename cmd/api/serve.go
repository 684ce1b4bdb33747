package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pg "pet-records/internal/adapters/storage/postgres"
	lite "pet-records/internal/adapters/storage/sqlite"
	"pet-records/internal/domain/cats"
	"pet-records/internal/domain/dogs"
	"pet-records/internal/platform/config"
	"pet-records/internal/platform/logger"
	"pet-records/internal/platform/seed"
	"pet-records/internal/router"

	"golang.org/x/sync/errgroup"
)

type cmdServe struct{}

func (cmdServe) Execute(_ []string) error {
	log, err := logger.New(Config.Log, appName)
	if err != nil {
		return err
	}
	if err := Config.Store.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, Config.Store)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	svcs, err := router.NewServices(ctx, router.StoreOptions{
		Driver:  Config.Store.Driver,
		DB:      db,
		Timeout: Config.Store.Timeout,
	})
	if err != nil {
		return err
	}

	if Config.SeedFile != "" {
		f, err := seed.LoadFile(Config.SeedFile)
		if err != nil {
			return err
		}
		res, err := seed.Apply[cats.Cat, dogs.Dog](ctx, f, svcs.Cats, svcs.Dogs)
		if err != nil {
			return err
		}
		log.Info("seed applied", map[string]any{"file": Config.SeedFile, "cats": res.Cats, "dogs": res.Dogs})
	}

	srv := &http.Server{
		Addr:         Config.Addr(),
		Handler:      router.NewRouter(router.Options{Logger: log, Services: &svcs}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": Config.Store.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), Config.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("goodbye", nil)
	return nil
}

// openDB devuelve nil para el driver memory.
func openDB(ctx context.Context, cfg config.StoreConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case router.DriverPostgres:
		return pg.Open(ctx, cfg.DSN)
	case router.DriverSQLite:
		return lite.Open(ctx, cfg.Path)
	default:
		return nil, nil
	}
}
