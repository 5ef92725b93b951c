package employer

import "time"

type Employer struct {
	ID             int64
	Name           string
	Description    *string
	Website        *string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	Verified       bool
	FelonyFriendly bool
	CreatedAt      time.Time
	IsActive       bool
}

type NewEmployer struct {
	Name           string
	Description    *string
	Website        *string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	FelonyFriendly bool
}
