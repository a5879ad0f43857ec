package main

import (
	"context"
	"flag"
	"log"
	"time"

	"artgallery/internal/config"
	"artgallery/internal/database"
	"artgallery/internal/pkg/logger"
	"artgallery/internal/repository"

	"go.uber.org/zap"
)

// Prunes abandoned carts. Meant to run from cron.
func main() {
	retention := flag.Duration("retention", 90*24*time.Hour, "delete cart items untouched for longer than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	before := time.Now().Add(-*retention)
	n, err := repository.NewCartRepository(db).DeleteStale(ctx, before)
	if err != nil {
		zl.Fatal("cart cleanup failed", zap.Error(err))
	}
	zl.Info("cart cleanup completed", zap.Int64("cart_items", n), zap.Time("before", before))
}
