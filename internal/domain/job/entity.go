package job

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Job struct {
	ID                     int64
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
	CreatedAt              time.Time
	IsActive               bool
	Status                 Status
	EmployerID             *int64
	ViewCount              int64
}

// NewJob carries the columns a caller may set at creation. Status, view
// count, activity and creation time are always store defaults.
type NewJob struct {
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
