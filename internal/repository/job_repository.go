package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fairchance-board/internal/database"
	"fairchance-board/internal/domain/job"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

// JobSortColumns is the allow-list of sortable job columns.
var JobSortColumns = map[string]struct{}{
	"created_at": {},
	"title":      {},
	"company":    {},
	"view_count": {},
}

const DefaultJobSort = "created_at"

// JobUpdatableColumns lists the columns a partial job update may touch.
var JobUpdatableColumns = map[string]struct{}{
	"title":                    {},
	"company":                  {},
	"location":                 {},
	"description":              {},
	"salary":                   {},
	"job_type":                 {},
	"felony_friendly":          {},
	"background_check_details": {},
	"contact_email":            {},
	"contact_phone":            {},
	"application_url":          {},
	"is_active":                {},
	"employer_id":              {},
}

var jobColumns = []string{
	"id",
	"title",
	"company",
	"location",
	"description",
	"salary",
	"job_type",
	"felony_friendly",
	"background_check_details",
	"contact_email",
	"contact_phone",
	"application_url",
	"created_at",
	"is_active",
	"status",
	"employer_id",
	"view_count",
}

// JobListFilter holds already-validated listing predicates. Nil pointers and
// empty strings mean "no filter"; IsActive = true is always applied.
type JobListFilter struct {
	Status         *job.Status
	FelonyFriendly *bool
	Location       string
	JobType        string
	Search         string
	CreatedSince   *time.Time
	EmployerID     *int64
	SortBy         string
	SortDesc       bool
}

type JobRepository interface {
	ListJobs(ctx context.Context, f JobListFilter) ([]job.Job, error)
	RecordJobView(ctx context.Context, jobID int64) (job.Job, error)
	CreateJob(ctx context.Context, in job.NewJob) (int64, error)
	JobExists(ctx context.Context, jobID int64) (bool, error)
	UpdateJob(ctx context.Context, jobID int64, changes []Assignment) error
	DeactivateJob(ctx context.Context, jobID int64) error
	SetJobStatus(ctx context.Context, jobID int64, status job.Status) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// BuildJobListQuery renders the listing query. Predicates are appended in a
// fixed order: status, felony_friendly, location, job_type, search,
// created_at, employer_id.
func BuildJobListQuery(f JobListFilter) (string, []any) {
	q := SelectQuery{Table: "jobs", Columns: jobColumns}
	q.Where.And("is_active", OpEq, true)

	if f.Status != nil {
		q.Where.And("status", OpEq, string(*f.Status))
	}
	if f.FelonyFriendly != nil {
		q.Where.And("felony_friendly", OpEq, *f.FelonyFriendly)
	}
	if f.Location != "" {
		q.Where.And("location", OpILike, Contains(f.Location))
	}
	if f.JobType != "" {
		q.Where.And("job_type", OpEq, f.JobType)
	}
	if f.Search != "" {
		term := Contains(f.Search)
		q.Where.AndAny(
			Predicate{Column: "title", Op: OpILike, Value: term},
			Predicate{Column: "company", Op: OpILike, Value: term},
			Predicate{Column: "description", Op: OpILike, Value: term},
		)
	}
	if f.CreatedSince != nil {
		q.Where.And("created_at", OpGte, *f.CreatedSince)
	}
	if f.EmployerID != nil {
		q.Where.And("employer_id", OpEq, *f.EmployerID)
	}

	sortBy, desc := f.SortBy, f.SortDesc
	if _, ok := JobSortColumns[sortBy]; !ok {
		sortBy, desc = DefaultJobSort, true
	}
	q.OrderBy = []OrderBy{{Column: sortBy, Desc: desc}, {Column: "id", Desc: desc}}

	return q.Build()
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, f JobListFilter) ([]job.Job, error) {
	query, args := BuildJobListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordJobView bumps view_count of an active job and returns the row as it
// is after the increment.
func (r *PostgresJobRepository) RecordJobView(ctx context.Context, jobID int64) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET view_count = view_count + 1
		 WHERE id = $1 AND is_active = true
		 RETURNING `+strings.Join(jobColumns, ", "),
		jobID,
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) CreateJob(ctx context.Context, in job.NewJob) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (
			title, company, location, description, salary, job_type,
			felony_friendly, background_check_details, contact_email,
			contact_phone, application_url, employer_id, status, view_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0)
		RETURNING id`,
		in.Title,
		in.Company,
		in.Location,
		in.Description,
		in.Salary,
		in.JobType,
		in.FelonyFriendly,
		in.BackgroundCheckDetails,
		in.ContactEmail,
		in.ContactPhone,
		in.ApplicationURL,
		in.EmployerID,
		string(job.StatusPending),
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresJobRepository) JobExists(ctx context.Context, jobID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) UpdateJob(ctx context.Context, jobID int64, changes []Assignment) error {
	query, args, ok := BuildUpdate("jobs", jobID, changes, JobUpdatableColumns)
	if !ok {
		return fmt.Errorf("update job %d: no updatable columns", jobID)
	}
	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) DeactivateJob(ctx context.Context, jobID int64) error {
	affected, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = false WHERE id = $1`, jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetJobStatus(ctx context.Context, jobID int64, status job.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid job status %q", status)
	}
	affected, err := r.db.Exec(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, string(status), jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.Description,
		&j.Salary,
		&j.JobType,
		&j.FelonyFriendly,
		&j.BackgroundCheckDetails,
		&j.ContactEmail,
		&j.ContactPhone,
		&j.ApplicationURL,
		&j.CreatedAt,
		&j.IsActive,
		&status,
		&j.EmployerID,
		&j.ViewCount,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}
