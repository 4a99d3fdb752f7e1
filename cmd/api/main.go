package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personajes-api/internal/platform/config"
	"personajes-api/internal/platform/logger"
	"personajes-api/internal/router"
)

// @title Personajes API
// @version 1.0
// @description CRUD de personajes persistidos en un archivo JSON.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// La colección se carga una sola vez, antes de aceptar requests.
	repo, closeRepo, err := router.OpenRepository(ctx, cfg, log)
	if err != nil {
		log.Error("store init failed", map[string]any{"store": string(cfg.Store), "err": err.Error()})
		os.Exit(1)
	}
	defer closeRepo()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Repo: repo, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is alive", map[string]any{
			"addr":       cfg.Addr(),
			"store":      string(cfg.Store),
			"started_at": time.Now().Format("2006-01-02 15:04:05"),
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			closeRepo()
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", map[string]any{"err": err.Error()})
		}
		// Sin requests en vuelo: deja el disco igual a la memoria aunque
		// alguna escritura anterior haya fallado.
		if err := repo.Persist(shutdownCtx); err != nil {
			log.Error("final persist failed", map[string]any{"err": err.Error()})
		}
		log.Info("server stopped", nil)
	}
}
