package routes

import (
	"fairchance-board/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health    *handler.HealthHandler
	jobs      *handler.JobsHandler
	employers *handler.EmployersHandler
	admin     *handler.AdminHandler
}

func NewRegistry(jobs *handler.JobsHandler, employers *handler.EmployersHandler, admin *handler.AdminHandler) *Registry {
	return &Registry{
		health:    handler.NewHealthHandler(),
		jobs:      jobs,
		employers: employers,
		admin:     admin,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.jobs.RegisterRoutes(api)
	r.employers.RegisterRoutes(api)
	r.admin.RegisterRoutes(api)
}
