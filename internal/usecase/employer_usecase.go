package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"fairchance-board/internal/domain/employer"
	"fairchance-board/internal/repository"

	"go.uber.org/zap"
)

// EmployerListParams are the raw employer listing query parameters.
type EmployerListParams struct {
	FelonyFriendly string
	Verified       string
	Search         string
}

type CreateEmployerInput struct {
	Name         string
	Description  *string
	Website      *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	// FelonyFriendly defaults to true when nil.
	FelonyFriendly *bool
}

type EmployerUsecase interface {
	ListEmployers(ctx context.Context, params EmployerListParams) ([]employer.Employer, error)
	GetEmployer(ctx context.Context, employerID int64) (employer.Employer, error)
	CreateEmployer(ctx context.Context, in CreateEmployerInput) (int64, error)
	UpdateEmployer(ctx context.Context, employerID int64, fields map[string]json.RawMessage) error
	DeleteEmployer(ctx context.Context, employerID int64) error
	VerifyEmployer(ctx context.Context, employerID int64) error
}

type Employer struct {
	employers repository.EmployerRepository
	logger    *zap.Logger
}

func NewEmployerUsecase(employers repository.EmployerRepository, logger *zap.Logger) *Employer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Employer{employers: employers, logger: logger}
}

func (u *Employer) ListEmployers(ctx context.Context, params EmployerListParams) ([]employer.Employer, error) {
	var f repository.EmployerListFilter
	if params.FelonyFriendly != "" {
		v := parseFlag(params.FelonyFriendly)
		f.FelonyFriendly = &v
	}
	if params.Verified != "" {
		v := parseFlag(params.Verified)
		f.Verified = &v
	}
	f.Search = params.Search

	items, err := u.employers.ListEmployers(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *Employer) GetEmployer(ctx context.Context, employerID int64) (employer.Employer, error) {
	e, err := u.employers.GetActiveEmployer(ctx, employerID)
	if err != nil {
		return employer.Employer{}, mapEmployerRepoError(err)
	}
	return e, nil
}

func (u *Employer) CreateEmployer(ctx context.Context, in CreateEmployerInput) (int64, error) {
	if in.Name == "" {
		return 0, invalid("Missing required field: name")
	}

	felonyFriendly := true
	if in.FelonyFriendly != nil {
		felonyFriendly = *in.FelonyFriendly
	}

	id, err := u.employers.CreateEmployer(ctx, employer.NewEmployer{
		Name:           in.Name,
		Description:    in.Description,
		Website:        in.Website,
		ContactName:    in.ContactName,
		ContactEmail:   in.ContactEmail,
		ContactPhone:   in.ContactPhone,
		FelonyFriendly: felonyFriendly,
	})
	if err != nil {
		return 0, mapEmployerRepoError(err)
	}

	u.logger.Info("employer created", zap.Int64("employer_id", id))
	return id, nil
}

var employerUpdateColumns = []fieldKind{
	{"name", kindRequiredText},
	{"description", kindText},
	{"website", kindText},
	{"contact_name", kindText},
	{"contact_email", kindText},
	{"contact_phone", kindText},
	{"felony_friendly", kindFlag},
	{"is_active", kindFlag},
}

func (u *Employer) UpdateEmployer(ctx context.Context, employerID int64, fields map[string]json.RawMessage) error {
	exists, err := u.employers.EmployerExists(ctx, employerID)
	if err != nil {
		return internal(err)
	}
	if !exists {
		return ErrEmployerNotFound
	}

	changes, err := decodeAssignments(fields, employerUpdateColumns, nil)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return invalid("No valid fields to update")
	}

	if err := u.employers.UpdateEmployer(ctx, employerID, changes); err != nil {
		return mapEmployerRepoError(err)
	}
	u.logger.Info("employer updated", zap.Int64("employer_id", employerID), zap.Int("fields", len(changes)))
	return nil
}

func (u *Employer) DeleteEmployer(ctx context.Context, employerID int64) error {
	if err := u.employers.DeactivateEmployer(ctx, employerID); err != nil {
		return mapEmployerRepoError(err)
	}
	u.logger.Info("employer deactivated", zap.Int64("employer_id", employerID))
	return nil
}

func (u *Employer) VerifyEmployer(ctx context.Context, employerID int64) error {
	if err := u.employers.SetEmployerVerified(ctx, employerID, true); err != nil {
		return mapEmployerRepoError(err)
	}
	u.logger.Info("employer verified", zap.Int64("employer_id", employerID))
	return nil
}

func mapEmployerRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrEmployerNotFound):
		return ErrEmployerNotFound
	case errors.Is(err, repository.ErrEmployerNameTaken):
		return ErrEmployerNameTaken
	default:
		return internal(err)
	}
}
