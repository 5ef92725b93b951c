package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fairchance-board/internal/domain/job"
	"fairchance-board/internal/repository"

	"go.uber.org/zap"
)

const statusAll = "all"

// JobListParams are the raw listing query parameters. Empty means absent.
type JobListParams struct {
	FelonyFriendly string
	Location       string
	JobType        string
	Search         string
	Status         string
	DaysPosted     string
	MinSalary      string
	MaxSalary      string
	SortBy         string
	SortOrder      string
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
	ListEmployerJobs(ctx context.Context, employerID int64, params JobListParams) ([]job.Job, error)
	ListPendingJobs(ctx context.Context) ([]job.Job, error)
}

type JobList struct {
	jobs      repository.JobRepository
	employers repository.EmployerRepository
	now       func() time.Time
	logger    *zap.Logger
}

// maxDaysPosted caps the days_posted window. Larger values reach back before
// any stored job, so they select the same rows.
const maxDaysPosted = 1_000_000

func NewJobListUsecase(jobs repository.JobRepository, employers repository.EmployerRepository, logger *zap.Logger) *JobList {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobList{jobs: jobs, employers: employers, now: time.Now, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	return u.list(ctx, params, nil)
}

func (u *JobList) ListEmployerJobs(ctx context.Context, employerID int64, params JobListParams) ([]job.Job, error) {
	ok, err := u.employers.ActiveEmployerExists(ctx, employerID)
	if err != nil {
		return nil, internal(err)
	}
	if !ok {
		return nil, ErrEmployerNotFound
	}
	return u.list(ctx, params, &employerID)
}

func (u *JobList) ListPendingJobs(ctx context.Context) ([]job.Job, error) {
	pending := job.StatusPending
	items, err := u.jobs.ListJobs(ctx, repository.JobListFilter{
		Status:   &pending,
		SortBy:   repository.DefaultJobSort,
		SortDesc: true,
	})
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *JobList) list(ctx context.Context, params JobListParams, employerID *int64) ([]job.Job, error) {
	f, bounds, err := u.parseParams(params)
	if err != nil {
		return nil, err
	}
	f.EmployerID = employerID

	items, err := u.jobs.ListJobs(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	if !bounds.Active() {
		return items, nil
	}

	out := make([]job.Job, 0, len(items))
	for _, it := range items {
		if bounds.Admits(it.Salary) {
			out = append(out, it)
		}
	}
	u.logger.Debug("salary filter applied",
		zap.Int("fetched", len(items)),
		zap.Int("kept", len(out)),
	)
	return out, nil
}

func (u *JobList) parseParams(p JobListParams) (repository.JobListFilter, SalaryBounds, error) {
	var f repository.JobListFilter
	var bounds SalaryBounds

	switch p.Status {
	case "":
		approved := job.StatusApproved
		f.Status = &approved
	case statusAll:
	default:
		s := job.Status(p.Status)
		f.Status = &s
	}

	if p.FelonyFriendly != "" {
		v := parseFlag(p.FelonyFriendly)
		f.FelonyFriendly = &v
	}
	f.Location = p.Location
	f.JobType = p.JobType
	f.Search = p.Search

	if p.DaysPosted != "" {
		days, err := strconv.Atoi(strings.TrimSpace(p.DaysPosted))
		if err != nil || days < 0 {
			return f, bounds, invalid("Invalid days_posted: must be a non-negative integer")
		}
		since := u.now().AddDate(0, 0, -min(days, maxDaysPosted))
		f.CreatedSince = &since
	}

	var err error
	if bounds.Min, err = parseSalaryBound("min_salary", p.MinSalary); err != nil {
		return f, bounds, err
	}
	if bounds.Max, err = parseSalaryBound("max_salary", p.MaxSalary); err != nil {
		return f, bounds, err
	}

	f.SortBy = p.SortBy
	if f.SortBy == "" {
		f.SortBy = repository.DefaultJobSort
	}
	f.SortDesc = p.SortOrder == "" || strings.EqualFold(p.SortOrder, "desc")

	return f, bounds, nil
}

func parseSalaryBound(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, invalid("Invalid %s: must be a number", name)
	}
	return &v, nil
}

// parseFlag reads a boolean query parameter: only "true" (any case) is true.
func parseFlag(s string) bool {
	return strings.EqualFold(s, "true")
}
