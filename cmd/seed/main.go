package main

import (
	"context"
	"log"
	"time"

	"fairchance-board/internal/app"
	"fairchance-board/internal/config"
	"fairchance-board/internal/database/migration"
	"fairchance-board/internal/database/seeder"
	"fairchance-board/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	db, err := app.ConnectDB(cfg)
	if err != nil {
		l.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Warn("close database", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migration.EnsureSchema(ctx, db.SQLDB(), l); err != nil {
		l.Fatal("migrations failed", zap.Error(err))
	}

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: l}
	if err := runner.Run(ctx, db); err != nil {
		l.Fatal("seeding failed", zap.Error(err))
	}
	l.Info("seeding complete")
}
