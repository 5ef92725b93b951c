package app

import (
	"context"

	"fairchance-board/internal/config"
	"fairchance-board/internal/database"
	"fairchance-board/internal/database/migration"
	"fairchance-board/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the HTTP API on top of a provided config.Config and
// *zap.Logger.
var Module = fx.Options(
	fx.Provide(
		newDB,
		NewContainer,
		func(c *Container) *routes.Registry { return c.Registry() },
		New,
	),
	fx.Invoke(registerLifecycle),
)

func newDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (database.DB, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing database pool")
			return db.Close()
		},
	})
	return db, nil
}

func registerLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, db database.DB, a *App, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Database.MigrateOnStart {
				if err := migration.EnsureSchema(ctx, db.SQLDB(), logger); err != nil {
					return err
				}
			}

			addr, err := ListenAddr(cfg.App.HTTPPort)
			if err != nil {
				return err
			}

			go func() {
				logger.Info("http server listening", zap.String("addr", addr))
				if err := a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					logger.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down http server")
			return a.Fiber.ShutdownWithContext(ctx)
		},
	})
}
