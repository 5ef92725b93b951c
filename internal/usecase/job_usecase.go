package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"fairchance-board/internal/domain/job"
	"fairchance-board/internal/repository"

	"go.uber.org/zap"
)

type CreateJobInput struct {
	Title                  string
	Company                string
	Location               string
	Description            string
	Salary                 *string
	JobType                *string
	FelonyFriendly         bool
	BackgroundCheckDetails *string
	ContactEmail           *string
	ContactPhone           *string
	ApplicationURL         *string
	EmployerID             *int64
}

type JobUsecase interface {
	GetJob(ctx context.Context, jobID int64) (job.Job, error)
	CreateJob(ctx context.Context, in CreateJobInput) (int64, error)
	UpdateJob(ctx context.Context, jobID int64, fields map[string]json.RawMessage) error
	DeleteJob(ctx context.Context, jobID int64) error
	ApproveJob(ctx context.Context, jobID int64) error
	RejectJob(ctx context.Context, jobID int64) error
}

type Job struct {
	jobs      repository.JobRepository
	employers repository.EmployerRepository
	logger    *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, employers repository.EmployerRepository, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{jobs: jobs, employers: employers, logger: logger}
}

// GetJob returns an active job and counts the read as a view.
func (u *Job) GetJob(ctx context.Context, jobID int64) (job.Job, error) {
	j, err := u.jobs.RecordJobView(ctx, jobID)
	if err != nil {
		return job.Job{}, mapJobRepoError(err)
	}
	return j, nil
}

func (u *Job) CreateJob(ctx context.Context, in CreateJobInput) (int64, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"company", in.Company},
		{"location", in.Location},
		{"description", in.Description},
	}
	for _, r := range required {
		if r.value == "" {
			return 0, invalid("Missing required field: %s", r.name)
		}
	}

	if in.EmployerID != nil {
		if err := u.checkEmployer(ctx, *in.EmployerID); err != nil {
			return 0, err
		}
	}

	id, err := u.jobs.CreateJob(ctx, job.NewJob{
		Title:                  in.Title,
		Company:                in.Company,
		Location:               in.Location,
		Description:            in.Description,
		Salary:                 in.Salary,
		JobType:                in.JobType,
		FelonyFriendly:         in.FelonyFriendly,
		BackgroundCheckDetails: in.BackgroundCheckDetails,
		ContactEmail:           in.ContactEmail,
		ContactPhone:           in.ContactPhone,
		ApplicationURL:         in.ApplicationURL,
		EmployerID:             in.EmployerID,
	})
	if err != nil {
		return 0, internal(err)
	}

	u.logger.Info("job created", zap.Int64("job_id", id))
	return id, nil
}

// jobUpdateColumns is the order in which partial update fields are applied.
var jobUpdateColumns = []fieldKind{
	{"title", kindRequiredText},
	{"company", kindRequiredText},
	{"location", kindRequiredText},
	{"description", kindRequiredText},
	{"salary", kindText},
	{"job_type", kindText},
	{"felony_friendly", kindFlag},
	{"background_check_details", kindText},
	{"contact_email", kindText},
	{"contact_phone", kindText},
	{"application_url", kindText},
	{"is_active", kindFlag},
	{"employer_id", kindEmployerRef},
}

// UpdateJob applies the recognised keys of fields to the job. Unknown keys are
// ignored; a request with no recognised key is rejected.
func (u *Job) UpdateJob(ctx context.Context, jobID int64, fields map[string]json.RawMessage) error {
	exists, err := u.jobs.JobExists(ctx, jobID)
	if err != nil {
		return internal(err)
	}
	if !exists {
		return ErrJobNotFound
	}

	changes, err := decodeAssignments(fields, jobUpdateColumns, func(id int64) error {
		return u.checkEmployer(ctx, id)
	})
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return invalid("No valid fields to update")
	}

	if err := u.jobs.UpdateJob(ctx, jobID, changes); err != nil {
		return mapJobRepoError(err)
	}
	u.logger.Info("job updated", zap.Int64("job_id", jobID), zap.Int("fields", len(changes)))
	return nil
}

func (u *Job) DeleteJob(ctx context.Context, jobID int64) error {
	if err := u.jobs.DeactivateJob(ctx, jobID); err != nil {
		return mapJobRepoError(err)
	}
	u.logger.Info("job deactivated", zap.Int64("job_id", jobID))
	return nil
}

func (u *Job) ApproveJob(ctx context.Context, jobID int64) error {
	return u.setStatus(ctx, jobID, job.StatusApproved)
}

func (u *Job) RejectJob(ctx context.Context, jobID int64) error {
	return u.setStatus(ctx, jobID, job.StatusRejected)
}

func (u *Job) setStatus(ctx context.Context, jobID int64, status job.Status) error {
	if err := u.jobs.SetJobStatus(ctx, jobID, status); err != nil {
		return mapJobRepoError(err)
	}
	u.logger.Info("job moderated", zap.Int64("job_id", jobID), zap.String("status", string(status)))
	return nil
}

func (u *Job) checkEmployer(ctx context.Context, employerID int64) error {
	ok, err := u.employers.ActiveEmployerExists(ctx, employerID)
	if err != nil {
		return internal(err)
	}
	if !ok {
		return invalid("Invalid employer_id")
	}
	return nil
}

func mapJobRepoError(err error) error {
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	return internal(err)
}
