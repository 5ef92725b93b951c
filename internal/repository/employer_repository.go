package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fairchance-board/internal/database"
	"fairchance-board/internal/database/postgres"
	"fairchance-board/internal/domain/employer"
)

var (
	ErrEmployerNotFound  = errors.New("employer not found")
	ErrEmployerNameTaken = errors.New("employer name already exists")
)

var EmployerUpdatableColumns = map[string]struct{}{
	"name":            {},
	"description":     {},
	"website":         {},
	"contact_name":    {},
	"contact_email":   {},
	"contact_phone":   {},
	"felony_friendly": {},
	"is_active":       {},
}

var employerColumns = []string{
	"id",
	"name",
	"description",
	"website",
	"contact_name",
	"contact_email",
	"contact_phone",
	"verified",
	"felony_friendly",
	"created_at",
	"is_active",
}

type EmployerListFilter struct {
	FelonyFriendly *bool
	Verified       *bool
	Search         string
}

type EmployerRepository interface {
	ListEmployers(ctx context.Context, f EmployerListFilter) ([]employer.Employer, error)
	GetActiveEmployer(ctx context.Context, employerID int64) (employer.Employer, error)
	ActiveEmployerExists(ctx context.Context, employerID int64) (bool, error)
	EmployerExists(ctx context.Context, employerID int64) (bool, error)
	CreateEmployer(ctx context.Context, in employer.NewEmployer) (int64, error)
	UpdateEmployer(ctx context.Context, employerID int64, changes []Assignment) error
	DeactivateEmployer(ctx context.Context, employerID int64) error
	SetEmployerVerified(ctx context.Context, employerID int64, verified bool) error
}

type PostgresEmployerRepository struct {
	db database.DB
}

func NewPostgresEmployerRepository(db database.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{db: db}
}

func BuildEmployerListQuery(f EmployerListFilter) (string, []any) {
	q := SelectQuery{Table: "employers", Columns: employerColumns}
	q.Where.And("is_active", OpEq, true)

	if f.FelonyFriendly != nil {
		q.Where.And("felony_friendly", OpEq, *f.FelonyFriendly)
	}
	if f.Verified != nil {
		q.Where.And("verified", OpEq, *f.Verified)
	}
	if f.Search != "" {
		term := Contains(f.Search)
		q.Where.AndAny(
			Predicate{Column: "name", Op: OpILike, Value: term},
			Predicate{Column: "description", Op: OpILike, Value: term},
		)
	}
	q.OrderBy = []OrderBy{{Column: "name"}}

	return q.Build()
}

func (r *PostgresEmployerRepository) ListEmployers(ctx context.Context, f EmployerListFilter) ([]employer.Employer, error) {
	query, args := BuildEmployerListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employer.Employer, 0)
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployerRepository) GetActiveEmployer(ctx context.Context, employerID int64) (employer.Employer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+strings.Join(employerColumns, ", ")+`
		 FROM employers
		 WHERE id = $1 AND is_active = true`,
		employerID,
	)
	e, err := scanEmployer(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return employer.Employer{}, ErrEmployerNotFound
		}
		return employer.Employer{}, err
	}
	return e, nil
}

func (r *PostgresEmployerRepository) ActiveEmployerExists(ctx context.Context, employerID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employers WHERE id = $1 AND is_active = true)`, employerID)
}

func (r *PostgresEmployerRepository) EmployerExists(ctx context.Context, employerID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employers WHERE id = $1)`, employerID)
}

func (r *PostgresEmployerRepository) exists(ctx context.Context, query string, employerID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, employerID).Scan(&exists); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployerRepository) CreateEmployer(ctx context.Context, in employer.NewEmployer) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO employers (
			name, description, website, contact_name, contact_email,
			contact_phone, felony_friendly, verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, false)
		RETURNING id`,
		in.Name,
		in.Description,
		in.Website,
		in.ContactName,
		in.ContactEmail,
		in.ContactPhone,
		in.FelonyFriendly,
	)
	if err := row.Scan(&id); err != nil {
		if postgres.IsUniqueViolation(err) {
			return 0, ErrEmployerNameTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *PostgresEmployerRepository) UpdateEmployer(ctx context.Context, employerID int64, changes []Assignment) error {
	query, args, ok := BuildUpdate("employers", employerID, changes, EmployerUpdatableColumns)
	if !ok {
		return fmt.Errorf("update employer %d: no updatable columns", employerID)
	}
	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrEmployerNameTaken
		}
		return err
	}
	if affected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *PostgresEmployerRepository) DeactivateEmployer(ctx context.Context, employerID int64) error {
	affected, err := r.db.Exec(ctx, `UPDATE employers SET is_active = false WHERE id = $1`, employerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *PostgresEmployerRepository) SetEmployerVerified(ctx context.Context, employerID int64, verified bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE employers SET verified = $1 WHERE id = $2`, verified, employerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func scanEmployer(row database.Row) (employer.Employer, error) {
	var e employer.Employer
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Website,
		&e.ContactName,
		&e.ContactEmail,
		&e.ContactPhone,
		&e.Verified,
		&e.FelonyFriendly,
		&e.CreatedAt,
		&e.IsActive,
	)
	if err != nil {
		return employer.Employer{}, err
	}
	return e, nil
}
