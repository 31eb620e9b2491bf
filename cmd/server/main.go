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

	"github.com/edualcrd/invoicemaker/internal/config"
	"github.com/edualcrd/invoicemaker/internal/db"
	"github.com/edualcrd/invoicemaker/internal/logger"
	"github.com/joho/godotenv"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	lg, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	// The token secret has no default: refusing to start beats shipping a
	// guessable signing key.
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("configuration: %v", err)
	}

	dbConn, err := db.Connect(cfg.Database)
	if err != nil {
		sugar.Fatalf("connect database: %v", err)
	}

	runMigrations := func() error {
		if cfg.App.Migrations && cfg.Database.Postgres() {
			return db.MigrateSQL(cfg.Database.DSN)
		}
		return db.Migrate(dbConn)
	}

	if *migrateOnlyFlag {
		if err := runMigrations(); err != nil {
			sugar.Fatalf("migration: %v", err)
		}
		sugar.Info("migrations completed")
		return
	}
	if err := runMigrations(); err != nil {
		sugar.Fatalf("migration: %v", err)
	}

	app := NewApp(dbConn, cfg, sugar)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		sugar.Infow("server starting", "port", cfg.Server.Port, "dev", cfg.App.Dev)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("error during shutdown", "err", err)
	}
	sugar.Info("server stopped gracefully")
}
