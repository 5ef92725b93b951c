package handler

import (
	"fairchance-board/internal/delivery/http/dto"
	"fairchance-board/internal/delivery/http/middleware"
	"fairchance-board/internal/pkg/response"
	"fairchance-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list usecase.JobListUsecase
	jobs usecase.JobUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, jobs usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{list: list, jobs: jobs}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

// listParams reads the listing query string shared by every job listing route.
func listParams(c fiber.Ctx) usecase.JobListParams {
	return usecase.JobListParams{
		FelonyFriendly: c.Query("felony_friendly"),
		Location:       c.Query("location"),
		JobType:        c.Query("job_type"),
		Search:         c.Query("search"),
		Status:         c.Query("status"),
		DaysPosted:     c.Query("days_posted"),
		MinSalary:      c.Query("min_salary"),
		MaxSalary:      c.Query("max_salary"),
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
	}
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	items, err := h.list.ListJobs(c.Context(), listParams(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobListResponse(items))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, msgJobNotFound)
	if err != nil {
		return err
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidJSON, err)
	}

	id, err := h.jobs.CreateJob(c.Context(), usecase.CreateJobInput{
		Title:                  req.Title,
		Company:                req.Company,
		Location:               req.Location,
		Description:            req.Description,
		Salary:                 req.Salary,
		JobType:                req.JobType,
		FelonyFriendly:         bool(req.FelonyFriendly),
		BackgroundCheckDetails: req.BackgroundCheckDetails,
		ContactEmail:           req.ContactEmail,
		ContactPhone:           req.ContactPhone,
		ApplicationURL:         req.ApplicationURL,
		EmployerID:             req.EmployerID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.CreatedResponse{ID: id, Message: "Job created successfully"})
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, msgJobNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.jobs.UpdateJob(c.Context(), id, fields); err != nil {
		return mapUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, "Job updated successfully")
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, msgJobNotFound)
	if err != nil {
		return err
	}

	if err := h.jobs.DeleteJob(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, "Job deleted successfully")
}
