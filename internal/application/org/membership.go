package org

import (
	"context"

	"github.com/communehq/commune/internal/application/ports"
	domerrors "github.com/communehq/commune/internal/domain/errors"
)

type AddMemberInput struct {
	OrgID  string
	UserID string
}

// AddMember appends an existing user to an organisation's membership.
// The insert itself is conditional at the store level, so a concurrent
// double-add degrades to a no-op rather than a duplicate row.
type AddMember struct {
	orgs  ports.OrganisationRepository
	users ports.UserRepository
}

func NewAddMember(orgs ports.OrganisationRepository, users ports.UserRepository) *AddMember {
	return &AddMember{orgs: orgs, users: users}
}

func (uc *AddMember) Execute(ctx context.Context, input AddMemberInput) error {
	org, err := uc.orgs.GetByID(ctx, input.OrgID)
	if err != nil {
		return err
	}
	if org == nil {
		return domerrors.ErrOrgNotFound
	}
	member, err := uc.orgs.IsMember(ctx, input.OrgID, input.UserID)
	if err != nil {
		return err
	}
	if member {
		return domerrors.ErrAlreadyMember
	}
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domerrors.ErrUserNotFound
	}
	return uc.orgs.AddMember(ctx, input.OrgID, input.UserID)
}
