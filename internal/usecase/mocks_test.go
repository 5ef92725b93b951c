package usecase

import (
	"context"

	"fairchance-board/internal/domain/employer"
	"fairchance-board/internal/domain/job"
	"fairchance-board/internal/repository"
)

type mockJobRepo struct {
	items      []job.Job
	listErr    error
	lastFilter repository.JobListFilter
	listCalls  int

	viewed  job.Job
	viewErr error

	createdID  int64
	created    *job.NewJob
	createErr  error
	exists     bool
	updates    []repository.Assignment
	updateErr  error
	writeErr   error
	statuses   map[int64]job.Status
	deactivate []int64
}

func (m *mockJobRepo) ListJobs(_ context.Context, f repository.JobListFilter) ([]job.Job, error) {
	m.listCalls++
	m.lastFilter = f
	return m.items, m.listErr
}

func (m *mockJobRepo) RecordJobView(context.Context, int64) (job.Job, error) {
	if m.viewErr != nil {
		return job.Job{}, m.viewErr
	}
	m.viewed.ViewCount++
	return m.viewed, nil
}

func (m *mockJobRepo) CreateJob(_ context.Context, in job.NewJob) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = &in
	return m.createdID, nil
}

func (m *mockJobRepo) JobExists(context.Context, int64) (bool, error) {
	return m.exists, nil
}

func (m *mockJobRepo) UpdateJob(_ context.Context, _ int64, changes []repository.Assignment) error {
	m.updates = changes
	return m.updateErr
}

func (m *mockJobRepo) DeactivateJob(_ context.Context, jobID int64) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.deactivate = append(m.deactivate, jobID)
	return nil
}

func (m *mockJobRepo) SetJobStatus(_ context.Context, jobID int64, status job.Status) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.statuses == nil {
		m.statuses = map[int64]job.Status{}
	}
	m.statuses[jobID] = status
	return nil
}

type mockEmployerRepo struct {
	items      []employer.Employer
	lastFilter repository.EmployerListFilter

	active    map[int64]bool
	existsAny bool
	get       employer.Employer
	getErr    error

	createdID int64
	created   *employer.NewEmployer
	createErr error
	updates   []repository.Assignment
	updateErr error
	writeErr  error
	verified  []int64
}

func (m *mockEmployerRepo) ListEmployers(_ context.Context, f repository.EmployerListFilter) ([]employer.Employer, error) {
	m.lastFilter = f
	return m.items, nil
}

func (m *mockEmployerRepo) GetActiveEmployer(context.Context, int64) (employer.Employer, error) {
	return m.get, m.getErr
}

func (m *mockEmployerRepo) ActiveEmployerExists(_ context.Context, employerID int64) (bool, error) {
	return m.active[employerID], nil
}

func (m *mockEmployerRepo) EmployerExists(context.Context, int64) (bool, error) {
	return m.existsAny, nil
}

func (m *mockEmployerRepo) CreateEmployer(_ context.Context, in employer.NewEmployer) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = &in
	return m.createdID, nil
}

func (m *mockEmployerRepo) UpdateEmployer(_ context.Context, _ int64, changes []repository.Assignment) error {
	m.updates = changes
	return m.updateErr
}

func (m *mockEmployerRepo) DeactivateEmployer(context.Context, int64) error {
	return m.writeErr
}

func (m *mockEmployerRepo) SetEmployerVerified(_ context.Context, employerID int64, _ bool) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.verified = append(m.verified, employerID)
	return nil
}
