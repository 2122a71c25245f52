package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"imagefuse/internal/http/handlers"
	httpapi "imagefuse/internal/http/httpapi"
	"imagefuse/internal/infra"
	"imagefuse/internal/merge"
	"imagefuse/internal/providers/gemini"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	var invoker merge.Invoker
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, gemini.Options{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create gemini client")
		}
		invoker = client
	} else {
		logger.Warn().Msg("GEMINI_API_KEY is not set; merge requests will fail until it is configured")
	}

	catalog := merge.ModelCatalog{Standard: cfg.GeminiModel, High: cfg.GeminiHiResModel}
	merger, err := merge.NewMerger(invoker, catalog, cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create merger")
	}

	app := handlers.NewApp(merger, merger.Catalog(), cfg.MaxUploadBytes, logger)
	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
