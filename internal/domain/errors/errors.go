package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserExists         = errors.New("a user with this email address already exists")
	ErrInvalidCredentials = errors.New("authentication failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrOrgNotFound        = errors.New("organisation not found")
	ErrAlreadyMember      = errors.New("user already exists in this organisation")
	ErrNoOrganisations    = errors.New("this user has not created or does not belong to any organisation")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)
