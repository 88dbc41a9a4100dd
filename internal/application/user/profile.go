package user

import (
	"context"

	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
)

type ProfileInput struct {
	RequesterID string
	TargetID    string
}

// GetProfile returns a user's profile to themselves, or to a requester who
// shares an organisation with them. Anyone else gets the same not-found as
// a nonexistent id.
type GetProfile struct {
	users ports.UserRepository
	orgs  ports.OrganisationRepository
}

func NewGetProfile(users ports.UserRepository, orgs ports.OrganisationRepository) *GetProfile {
	return &GetProfile{users: users, orgs: orgs}
}

func (uc *GetProfile) Execute(ctx context.Context, input ProfileInput) (*domain.User, error) {
	if input.TargetID != input.RequesterID {
		shared, err := uc.orgs.SharesOrganisation(ctx, input.RequesterID, input.TargetID)
		if err != nil {
			return nil, err
		}
		if !shared {
			return nil, domerrors.ErrUserNotFound
		}
	}
	target, err := uc.users.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return target, nil
}
