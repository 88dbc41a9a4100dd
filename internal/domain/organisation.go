package domain

import "time"

// Organisation is a named group of users with one designated creator.
// The creator is always a member.
type Organisation struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// Member links a user to an organisation.
type Member struct {
	OrgID     string
	UserID    string
	CreatedAt time.Time
}
