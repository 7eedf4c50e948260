// Command server starts the resume analyzer HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/advisor/noop"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/advisor/openrouter"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/httpserver"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/inventory/memory"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)
	observability.InitMetrics()

	// Collaborators. The advisor degrades to the null object when no key is
	// configured; every result is then fully deterministic.
	var advisor domain.Advisor = noop.New()
	if cfg.AdvisorEnabled() {
		advisor = openrouter.New(cfg)
		slog.Info("advisor enabled", slog.String("base_url", cfg.AdvisorBaseURL), slog.String("model", cfg.AdvisorModel))
	} else {
		slog.Info("advisor disabled, deterministic output only")
	}
	store := memory.New()

	eng := engine.New(lexicon.Default())
	analyzeSvc := usecase.NewAnalyzeService(eng, advisor)
	matchSvc := usecase.NewMatchService(eng, store, advisor)
	syncSvc := usecase.NewSyncService(store)

	srv := httpserver.NewServer(cfg, analyzeSvc, matchSvc, syncSvc)
	handler := httpserver.BuildRouter(cfg, srv)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		slog.Info("server listening", slog.Int("port", cfg.Port), slog.String("env", cfg.AppEnv))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
