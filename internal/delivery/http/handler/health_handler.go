package handler

import (
	"fairchance-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type indexResponse struct {
	Message       string            `json:"message"`
	Status        string            `json:"status"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

var endpoints = map[string]string{
	"health":               "/api/health",
	"all_jobs":             "/api/jobs",
	"felony_friendly_jobs": "/api/jobs?felony_friendly=true",
	"search":               "/api/jobs?search=keyword",
	"filter_by_location":   "/api/jobs?location=Austin",
	"filter_by_salary":     "/api/jobs?min_salary=15&max_salary=25",
	"single_job":           "/api/jobs/{id}",
	"create_job":           "POST /api/jobs",
	"update_job":           "PUT /api/jobs/{id}",
	"delete_job":           "DELETE /api/jobs/{id}",
	"employers":            "/api/employers",
	"employer_jobs":        "/api/employers/{id}/jobs",
	"pending_jobs":         "/api/admin/jobs/pending",
	"approve_job":          "POST /api/admin/jobs/{id}/approve",
	"reject_job":           "POST /api/admin/jobs/{id}/reject",
	"verify_employer":      "POST /api/admin/employers/{id}/verify",
	"metrics":              "/metrics",
}

func (h *HealthHandler) RegisterRoutes(app fiber.Router) {
	if app == nil {
		return
	}

	app.Get("/", h.Index)
	app.Get("/api/health", h.Health)
}

func (h *HealthHandler) Index(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, indexResponse{
		Message:       "Felony-Friendly Job Board API",
		Status:        "running",
		Endpoints:     endpoints,
		Documentation: "See API_DOCUMENTATION.md for full details",
	})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, healthResponse{Status: "healthy", Message: "API is running"})
}
