package identity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// DeriveID returns the identifier for a seed string: a SHA-256 digest in
// hex. The same seed always yields the same id, which is what makes a
// duplicate email collide with the existing account before any insert.
func DeriveID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// NewID returns a fresh random identifier with the same shape as DeriveID.
// Organisation ids are random rather than derived from the creator, so a
// user creating a second organisation cannot collide with their first.
func NewID() string {
	return DeriveID(uuid.NewString())
}
