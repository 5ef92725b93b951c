package app

import (
	"fmt"
	"strings"

	"fairchance-board/internal/config"
	"fairchance-board/internal/delivery/http/middleware"
	"fairchance-board/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *zap.Logger, registry *routes.Registry) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	registry.Register(f)

	return &App{Fiber: f}
}

// registerGlobalMiddleware installs, outermost first: access log, CORS, error
// rendering and metrics.
func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(cors.New())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.Metrics())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
