package ports

import (
	"context"

	"github.com/communehq/commune/internal/domain"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByEmailOrPhone backs the registration conflict check; either match
	// counts as a duplicate.
	GetByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error)
}

// OrganisationRepository defines persistence for organisations and membership.
type OrganisationRepository interface {
	Create(ctx context.Context, org *domain.Organisation) error
	GetByID(ctx context.Context, orgID string) (*domain.Organisation, error)
	// GetByIDForCreator returns the organisation only when createdBy matches.
	GetByIDForCreator(ctx context.Context, orgID, creatorID string) (*domain.Organisation, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Organisation, error)
	AddMember(ctx context.Context, orgID, userID string) error
	IsMember(ctx context.Context, orgID, userID string) (bool, error)
	ListMembers(ctx context.Context, orgID string) ([]*domain.Member, error)
	// SharesOrganisation reports whether two users are members of at least
	// one common organisation.
	SharesOrganisation(ctx context.Context, userID, otherID string) (bool, error)
}
