// Command server runs the contract desk HTTP backend.
//
// Bootstrap order: load .env (best effort), load and validate config,
// configure zerolog, set up OpenTelemetry, open the JSON document
// stores, construct the inference client, wire routes, and serve with
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/rsinha/go-contract-desk/docs"
	"github.com/rsinha/go-contract-desk/internal/config"
	httpapi "github.com/rsinha/go-contract-desk/internal/http"
	"github.com/rsinha/go-contract-desk/internal/llm"
	"github.com/rsinha/go-contract-desk/internal/observability"
	"github.com/rsinha/go-contract-desk/internal/store"
	"github.com/rsinha/go-contract-desk/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        Contract Desk API
// @version      1.0
// @description  Contract tracking backend with expiry alerts and an AI assistant backed by a locally hosted model.
// @BasePath     /api
func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	contracts := store.NewContractStore(cfg.ContractsPath)
	sessions := store.NewSessionStore(cfg.SessionsPath)
	model := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, contracts, sessions, model, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("version", version).
			Str("model", cfg.LLM.Model).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	log.Info().Msg("server stopped")
}
