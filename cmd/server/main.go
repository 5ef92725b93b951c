package main

import (
	"context"
	"log"
	"time"

	"fairchance-board/internal/app"
	"fairchance-board/internal/config"
	"fairchance-board/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	application := fx.New(
		fx.Provide(
			config.Load,
			logger.New,
		),
		app.Module,
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()
	if err := application.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	<-application.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStop()
	if err := application.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
