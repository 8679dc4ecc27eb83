package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostledger/hostledger/internal/api"
	"github.com/hostledger/hostledger/internal/auth"
	"github.com/hostledger/hostledger/internal/config"
	"github.com/hostledger/hostledger/internal/feed"
	httpserver "github.com/hostledger/hostledger/internal/http"
	"github.com/hostledger/hostledger/internal/store"
)

func main() {
	log.Println("Starting HostLedger server...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("failed to create db pool: %v", err)
	}
	defer pool.Close()

	if err := store.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	stor := store.New(pool)
	authService := auth.NewService(cfg.Auth.TokenHash)

	fees := feed.DefaultFeeSchedule()
	for platform, rate := range cfg.Import.FeeRates {
		fees.Rates[store.Platform(platform)] = rate
	}
	importer := feed.NewImporter(fees, feed.NewFetcher(cfg.Import.FetchTimeout))
	handler := api.NewHandler(stor, importer, cfg.WeeksPerYear)

	r := httpserver.NewRouter(cfg, stor, authService, handler)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
