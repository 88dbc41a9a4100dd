package domain

import "time"

// User is a registered account. The ID is derived from the email at
// registration time, so a given email always maps to the same identifier.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}
