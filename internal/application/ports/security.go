package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates bearer tokens for a user identity.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Validate returns the embedded user id, or errors.ErrTokenExpired /
	// errors.ErrTokenInvalid.
	Validate(token string) (string, error)
}
