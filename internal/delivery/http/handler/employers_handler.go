package handler

import (
	"fairchance-board/internal/delivery/http/dto"
	"fairchance-board/internal/delivery/http/middleware"
	"fairchance-board/internal/pkg/response"
	"fairchance-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployersHandler struct {
	employers usecase.EmployerUsecase
	list      usecase.JobListUsecase
}

func NewEmployersHandler(employers usecase.EmployerUsecase, list usecase.JobListUsecase) *EmployersHandler {
	return &EmployersHandler{employers: employers, list: list}
}

func (h *EmployersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employers")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/jobs", h.ListJobs)
}

func (h *EmployersHandler) List(c fiber.Ctx) error {
	items, err := h.employers.ListEmployers(c.Context(), usecase.EmployerListParams{
		FelonyFriendly: c.Query("felony_friendly"),
		Verified:       c.Query("verified"),
		Search:         c.Query("search"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerListResponse(items))
}

func (h *EmployersHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, msgEmployerNotFound)
	if err != nil {
		return err
	}

	e, err := h.employers.GetEmployer(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerResponse(e))
}

func (h *EmployersHandler) Create(c fiber.Ctx) error {
	var req dto.CreateEmployerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidJSON, err)
	}

	id, err := h.employers.CreateEmployer(c.Context(), usecase.CreateEmployerInput{
		Name:           req.Name,
		Description:    req.Description,
		Website:        req.Website,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		FelonyFriendly: req.FelonyFriendlyValue(),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.CreatedResponse{ID: id, Message: "Employer created successfully"})
}

func (h *EmployersHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, msgEmployerNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.employers.UpdateEmployer(c.Context(), id, fields); err != nil {
		return mapUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, "Employer updated successfully")
}

func (h *EmployersHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, msgEmployerNotFound)
	if err != nil {
		return err
	}

	if err := h.employers.DeleteEmployer(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, "Employer deleted successfully")
}

func (h *EmployersHandler) ListJobs(c fiber.Ctx) error {
	id, err := parseID(c, msgEmployerNotFound)
	if err != nil {
		return err
	}

	items, err := h.list.ListEmployerJobs(c.Context(), id, listParams(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobListResponse(items))
}
