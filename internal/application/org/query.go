package org

import (
	"context"

	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
)

// Query answers organisation lookups for an authenticated user.
type Query struct {
	orgs ports.OrganisationRepository
}

func NewQuery(orgs ports.OrganisationRepository) *Query {
	return &Query{orgs: orgs}
}

// ListForUser returns every organisation the user belongs to. An empty
// result is ErrNoOrganisations, not an empty success: callers surface it as
// a not-found condition.
func (uc *Query) ListForUser(ctx context.Context, userID string) ([]*domain.Organisation, error) {
	list, err := uc.orgs.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domerrors.ErrNoOrganisations
	}
	return list, nil
}

// GetByID returns the organisation only to its creator. A missing
// organisation and one created by somebody else are indistinguishable to
// the caller.
func (uc *Query) GetByID(ctx context.Context, orgID, userID string) (*domain.Organisation, error) {
	org, err := uc.orgs.GetByIDForCreator(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domerrors.ErrOrgNotFound
	}
	return org, nil
}

// ListMembers returns the membership of an organisation the requester
// belongs to. Non-members get the same not-found as a missing organisation.
func (uc *Query) ListMembers(ctx context.Context, orgID, requesterID string) ([]*domain.Member, error) {
	member, err := uc.orgs.IsMember(ctx, orgID, requesterID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domerrors.ErrOrgNotFound
	}
	return uc.orgs.ListMembers(ctx, orgID)
}
