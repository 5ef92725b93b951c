package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fairchance-board/internal/domain/job"
	"fairchance-board/internal/repository"
)

func body(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad test body: %v", err)
	}
	return m
}

func validJobInput() CreateJobInput {
	return CreateJobInput{
		Title:       "Line Cook",
		Company:     "Fresh Start Cafe",
		Location:    "Austin, TX",
		Description: "Prep and cook",
	}
}

func TestJobUsecase_GetJobCountsView(t *testing.T) {
	jobs := &mockJobRepo{viewed: job.Job{ID: 1, ViewCount: 4}}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

	first, err := uc.GetJob(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.GetJob(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.ViewCount-first.ViewCount != 1 {
		t.Fatalf("expected consecutive reads to differ by 1, got %d and %d", first.ViewCount, second.ViewCount)
	}
}

func TestJobUsecase_GetJobNotFound(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{viewErr: repository.ErrJobNotFound}, &mockEmployerRepo{}, nil)

	_, err := uc.GetJob(context.Background(), 1)
	if !errors.Is(err, ErrJobNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_CreateJobReportsFirstMissingField(t *testing.T) {
	in := validJobInput()
	in.Company = ""
	in.Description = ""

	jobs := &mockJobRepo{}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

	_, err := uc.CreateJob(context.Background(), in)
	if got := ValidationMessage(err); got != "Missing required field: company" {
		t.Fatalf("unexpected message %q (err=%v)", got, err)
	}
	if jobs.created != nil {
		t.Fatalf("expected no insert")
	}
}

func TestJobUsecase_CreateJobRejectsInactiveEmployer(t *testing.T) {
	in := validJobInput()
	employerID := int64(3)
	in.EmployerID = &employerID

	jobs := &mockJobRepo{}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{active: map[int64]bool{}}, nil)

	_, err := uc.CreateJob(context.Background(), in)
	if got := ValidationMessage(err); got != "Invalid employer_id" {
		t.Fatalf("unexpected message %q (err=%v)", got, err)
	}
	if jobs.created != nil {
		t.Fatalf("expected no insert")
	}
}

func TestJobUsecase_CreateJob(t *testing.T) {
	in := validJobInput()
	employerID := int64(3)
	in.EmployerID = &employerID
	in.FelonyFriendly = true

	jobs := &mockJobRepo{createdID: 12}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{active: map[int64]bool{3: true}}, nil)

	id, err := uc.CreateJob(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected id 12, got %d", id)
	}
	if jobs.created == nil || !jobs.created.FelonyFriendly || *jobs.created.EmployerID != 3 {
		t.Fatalf("unexpected insert: %+v", jobs.created)
	}
}

func TestJobUsecase_UpdateJobNotFoundBeforeValidation(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{exists: false}, &mockEmployerRepo{}, nil)

	err := uc.UpdateJob(context.Background(), 5, body(t, `{}`))
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_UpdateJobNoValidFields(t *testing.T) {
	jobs := &mockJobRepo{exists: true}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

	err := uc.UpdateJob(context.Background(), 5, body(t, `{"view_count": 100, "status": "approved"}`))
	if got := ValidationMessage(err); got != "No valid fields to update" {
		t.Fatalf("unexpected message %q (err=%v)", got, err)
	}
}

func TestJobUsecase_UpdateJobAppliesAllowedFields(t *testing.T) {
	jobs := &mockJobRepo{exists: true}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{active: map[int64]bool{2: true}}, nil)

	err := uc.UpdateJob(context.Background(), 5, body(t, `{
		"salary": null,
		"title": "Forklift Operator",
		"felony_friendly": "yes",
		"employer_id": 2,
		"unknown": "ignored"
	}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(jobs.updates) != 4 {
		t.Fatalf("expected 4 assignments, got %+v", jobs.updates)
	}
	wantCols := []string{"title", "salary", "felony_friendly", "employer_id"}
	for i, col := range wantCols {
		if jobs.updates[i].Column != col {
			t.Fatalf("assignment %d: expected %s, got %s", i, col, jobs.updates[i].Column)
		}
	}
	if title, ok := jobs.updates[0].Value.(*string); !ok || *title != "Forklift Operator" {
		t.Fatalf("unexpected title value: %#v", jobs.updates[0].Value)
	}
	if salary, ok := jobs.updates[1].Value.(*string); !ok || salary != nil {
		t.Fatalf("expected salary cleared, got %#v", jobs.updates[1].Value)
	}
	if jobs.updates[2].Value != true {
		t.Fatalf("expected truthy felony_friendly, got %#v", jobs.updates[2].Value)
	}
	if jobs.updates[3].Value != int64(2) {
		t.Fatalf("expected employer_id 2, got %#v", jobs.updates[3].Value)
	}
}

func TestJobUsecase_UpdateJobEmployerNullClears(t *testing.T) {
	jobs := &mockJobRepo{exists: true}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

	if err := uc.UpdateJob(context.Background(), 5, body(t, `{"employer_id": null}`)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs.updates) != 1 || jobs.updates[0].Value != nil {
		t.Fatalf("expected employer_id set to NULL, got %+v", jobs.updates)
	}
}

func TestJobUsecase_UpdateJobRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "unknown employer", body: `{"employer_id": 77}`, message: "Invalid employer_id"},
		{name: "employer not a number", body: `{"employer_id": "two"}`, message: "Invalid employer_id"},
		{name: "null title", body: `{"title": null}`, message: "Invalid value for title"},
		{name: "empty company", body: `{"company": ""}`, message: "Invalid value for company"},
		{name: "numeric salary", body: `{"salary": 15}`, message: "Invalid value for salary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs := &mockJobRepo{exists: true}
			uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

			err := uc.UpdateJob(context.Background(), 5, body(t, tc.body))
			if got := ValidationMessage(err); got != tc.message {
				t.Fatalf("expected %q, got %q (err=%v)", tc.message, got, err)
			}
			if jobs.updates != nil {
				t.Fatalf("expected no update")
			}
		})
	}
}

func TestJobUsecase_ModerationIsIdempotent(t *testing.T) {
	jobs := &mockJobRepo{}
	uc := NewJobUsecase(jobs, &mockEmployerRepo{}, nil)

	for i := 0; i < 2; i++ {
		if err := uc.ApproveJob(context.Background(), 8); err != nil {
			t.Fatalf("approve #%d: unexpected err: %v", i+1, err)
		}
	}
	if jobs.statuses[8] != job.StatusApproved {
		t.Fatalf("expected approved, got %s", jobs.statuses[8])
	}

	if err := uc.RejectJob(context.Background(), 8); err != nil {
		t.Fatalf("reject: unexpected err: %v", err)
	}
	if jobs.statuses[8] != job.StatusRejected {
		t.Fatalf("expected rejected, got %s", jobs.statuses[8])
	}
}

func TestJobUsecase_WritesMapNotFound(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{writeErr: repository.ErrJobNotFound}, &mockEmployerRepo{}, nil)

	if err := uc.DeleteJob(context.Background(), 1); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("delete: expected ErrJobNotFound, got %v", err)
	}
	if err := uc.ApproveJob(context.Background(), 1); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("approve: expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_StoreErrorsAreInternal(t *testing.T) {
	cause := errors.New("connection reset")
	uc := NewJobUsecase(&mockJobRepo{writeErr: cause}, &mockEmployerRepo{}, nil)

	err := uc.DeleteJob(context.Background(), 1)
	if !errors.Is(err, ErrInternal) || !errors.Is(err, cause) {
		t.Fatalf("expected internal error wrapping cause, got %v", err)
	}
}
