package dto

import (
	"fairchance-board/internal/domain/employer"
	"fairchance-board/internal/domain/job"
)

type EmployerResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Website        *string `json:"website"`
	ContactName    *string `json:"contact_name"`
	ContactEmail   *string `json:"contact_email"`
	ContactPhone   *string `json:"contact_phone"`
	Verified       bool    `json:"verified"`
	FelonyFriendly bool    `json:"felony_friendly"`
	CreatedAt      string  `json:"created_at"`
}

func NewEmployerResponse(e employer.Employer) EmployerResponse {
	return EmployerResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Website:        e.Website,
		ContactName:    e.ContactName,
		ContactEmail:   e.ContactEmail,
		ContactPhone:   e.ContactPhone,
		Verified:       e.Verified,
		FelonyFriendly: e.FelonyFriendly,
		CreatedAt:      formatTime(e.CreatedAt),
	}
}

func NewEmployerListResponse(items []employer.Employer) []EmployerResponse {
	out := make([]EmployerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewEmployerResponse(it))
	}
	return out
}

type CreateEmployerRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Website      *string `json:"website"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	// FelonyFriendly is nil when the key is absent or null.
	FelonyFriendly *job.Flag `json:"felony_friendly"`
}

func (r CreateEmployerRequest) FelonyFriendlyValue() *bool {
	if r.FelonyFriendly == nil {
		return nil
	}
	v := bool(*r.FelonyFriendly)
	return &v
}

type EmployerVerifiedResponse struct {
	Message    string `json:"message"`
	EmployerID int64  `json:"employer_id"`
}
