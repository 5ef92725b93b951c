package dto

import (
	"time"

	"fairchance-board/internal/domain/job"
)

type JobResponse struct {
	ID                     int64   `json:"id"`
	Title                  string  `json:"title"`
	Company                string  `json:"company"`
	Location               string  `json:"location"`
	Description            string  `json:"description"`
	Salary                 *string `json:"salary"`
	JobType                *string `json:"job_type"`
	FelonyFriendly         bool    `json:"felony_friendly"`
	BackgroundCheckDetails *string `json:"background_check_details"`
	ContactEmail           *string `json:"contact_email"`
	ContactPhone           *string `json:"contact_phone"`
	ApplicationURL         *string `json:"application_url"`
	CreatedAt              string  `json:"created_at"`
	Status                 string  `json:"status"`
	ViewCount              int64   `json:"view_count"`
	EmployerID             *int64  `json:"employer_id,omitempty"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                     j.ID,
		Title:                  j.Title,
		Company:                j.Company,
		Location:               j.Location,
		Description:            j.Description,
		Salary:                 j.Salary,
		JobType:                j.JobType,
		FelonyFriendly:         j.FelonyFriendly,
		BackgroundCheckDetails: j.BackgroundCheckDetails,
		ContactEmail:           j.ContactEmail,
		ContactPhone:           j.ContactPhone,
		ApplicationURL:         j.ApplicationURL,
		CreatedAt:              formatTime(j.CreatedAt),
		Status:                 string(j.Status),
		ViewCount:              j.ViewCount,
		EmployerID:             j.EmployerID,
	}
}

func NewJobListResponse(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewJobResponse(it))
	}
	return out
}

type CreateJobRequest struct {
	Title                  string   `json:"title"`
	Company                string   `json:"company"`
	Location               string   `json:"location"`
	Description            string   `json:"description"`
	Salary                 *string  `json:"salary"`
	JobType                *string  `json:"job_type"`
	FelonyFriendly         job.Flag `json:"felony_friendly"`
	BackgroundCheckDetails *string  `json:"background_check_details"`
	ContactEmail           *string  `json:"contact_email"`
	ContactPhone           *string  `json:"contact_phone"`
	ApplicationURL         *string  `json:"application_url"`
	EmployerID             *int64   `json:"employer_id"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type JobModeratedResponse struct {
	Message string `json:"message"`
	JobID   int64  `json:"job_id"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
