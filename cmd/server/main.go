/*
main.go - Application entry point

PURPOSE:
  Starts the wage calculator API server: configuration, run-history store,
  router, graceful shutdown.

STARTUP SEQUENCE:
  1. Configure zerolog (console writer outside production)
  2. Load environment config, apply flag overrides
  3. Open the run-history store (":memory:" by default)
  4. Wire the router and start the HTTP server
  5. On SIGINT/SIGTERM, drain connections and close the store

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides SERVER_PORT)
  -db      Run-history DSN (overrides STORE_DSN); ":memory:" keeps history
           session-scoped, a file path makes it durable

EXAMPLES:
  # Session-scoped history (default)
  ./server

  # Durable history on port 3000
  ./server -port=3000 -db=./data/runs.db
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/warp/wage-engine/api"
	"github.com/warp/wage-engine/internal/config"
	"github.com/warp/wage-engine/store/sqlite"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENVIRONMENT") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	port := flag.Int("port", cfg.Server.Port, "HTTP server port")
	dsn := flag.String("db", cfg.Store.DSN, "run-history DSN (\":memory:\" for session-scoped)")
	flag.Parse()

	store, err := sqlite.New(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open run-history store")
	}
	defer store.Close()

	handler := api.NewHandler(store, log.Logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().Int("port", *port).Str("dsn", *dsn).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
