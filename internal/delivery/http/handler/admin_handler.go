package handler

import (
	"fairchance-board/internal/delivery/http/dto"
	"fairchance-board/internal/pkg/response"
	"fairchance-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler serves the moderation routes.
type AdminHandler struct {
	list      usecase.JobListUsecase
	jobs      usecase.JobUsecase
	employers usecase.EmployerUsecase
}

func NewAdminHandler(list usecase.JobListUsecase, jobs usecase.JobUsecase, employers usecase.EmployerUsecase) *AdminHandler {
	return &AdminHandler{list: list, jobs: jobs, employers: employers}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/admin")
	grp.Get("/jobs/pending", h.PendingJobs)
	grp.Post("/jobs/:id/approve", h.ApproveJob)
	grp.Post("/jobs/:id/reject", h.RejectJob)
	grp.Post("/employers/:id/verify", h.VerifyEmployer)
}

func (h *AdminHandler) PendingJobs(c fiber.Ctx) error {
	items, err := h.list.ListPendingJobs(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobListResponse(items))
}

func (h *AdminHandler) ApproveJob(c fiber.Ctx) error {
	id, err := parseID(c, msgJobNotFound)
	if err != nil {
		return err
	}
	if err := h.jobs.ApproveJob(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.JobModeratedResponse{Message: "Job approved successfully", JobID: id})
}

func (h *AdminHandler) RejectJob(c fiber.Ctx) error {
	id, err := parseID(c, msgJobNotFound)
	if err != nil {
		return err
	}
	if err := h.jobs.RejectJob(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.JobModeratedResponse{Message: "Job rejected successfully", JobID: id})
}

func (h *AdminHandler) VerifyEmployer(c fiber.Ctx) error {
	id, err := parseID(c, msgEmployerNotFound)
	if err != nil {
		return err
	}
	if err := h.employers.VerifyEmployer(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.EmployerVerifiedResponse{Message: "Employer verified successfully", EmployerID: id})
}
