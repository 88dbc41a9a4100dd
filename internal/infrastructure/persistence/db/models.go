package db

import "time"

type User struct {
	Userid       string
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}

type Organisation struct {
	Orgid       string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

type OrganisationMember struct {
	Orgid     string
	Userid    string
	CreatedAt time.Time
}
