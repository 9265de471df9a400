package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"pet-care-hub/internal/adapters/auth/token"
	"pet-care-hub/internal/adapters/storage/localstore"
	"pet-care-hub/internal/bootstrap"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/session"
	"pet-care-hub/internal/domain/vaccinations"
	"pet-care-hub/internal/platform/config"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/router"
)

func main() {
	// .env local opcional; las env reales pisan lo que haya ahí
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	kv, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("storage error: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	sessionSvc := session.NewService(localstore.NewSessionStore(kv))
	petsSvc := pets.NewService(localstore.NewPetsRepo(kv))
	vaccSvc := vaccinations.NewService(localstore.NewVaccinationsRepo(kv))

	// Hidratación única antes de aceptar tráfico.
	var runner bootstrap.Runner
	if err := runner.Run(context.Background(), bootstrap.Deps{
		KV:           kv,
		Session:      sessionSvc,
		Pets:         petsSvc,
		Vaccinations: vaccSvc,
		Logger:       logg,
	}); err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	opts := router.Options{
		Logger:       logg,
		Session:      sessionSvc,
		Pets:         petsSvc,
		Vaccinations: vaccSvc,
	}
	if !cfg.DevMode {
		mgr, err := token.NewManager(cfg.SessionSecret, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("token error: %v", err)
		}
		opts.Verifier = mgr
		opts.Issuer = mgr
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logg.Info("starting server", map[string]any{
		"addr":  cfg.Addr,
		"store": string(cfg.Store),
		"dev":   cfg.DevMode,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func openStore(cfg config.Config) (localstore.KeyValue, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o770); err != nil {
			return nil, nil, err
		}
		kv, err := localstore.OpenSQLite(filepath.Join(cfg.DataDir, "petcare.db"))
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	case config.StorePostgres:
		kv, err := localstore.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	case config.StoreMemory:
		return localstore.NewMemoryKV(), nil, nil
	default:
		kv, err := localstore.NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, nil, nil
	}
}
