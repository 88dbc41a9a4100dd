package org

import (
	"context"
	"time"

	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
	"github.com/communehq/commune/internal/infrastructure/identity"
)

type CreateInput struct {
	UserID      string
	Name        string
	Description string
}

type CreateResult struct {
	Organisation *domain.Organisation
}

// Create persists a new organisation with the caller as creator and sole
// member. The supplied name is rewritten to the `<Name>'s Organisation`
// form, mirroring the default-organisation naming.
type Create struct {
	orgs ports.OrganisationRepository
}

func NewCreate(orgs ports.OrganisationRepository) *Create {
	return &Create{orgs: orgs}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*CreateResult, error) {
	org := &domain.Organisation{
		ID:          identity.NewID(),
		Name:        OrganisationName(input.Name),
		Description: input.Description,
		CreatedBy:   input.UserID,
		CreatedAt:   time.Now(),
	}
	if err := uc.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return &CreateResult{Organisation: org}, nil
}

// CreateDefault builds the organisation every user receives on
// registration, named after their first name.
func (uc *Create) CreateDefault(ctx context.Context, firstName, userID string) (*domain.Organisation, error) {
	org := &domain.Organisation{
		ID:          identity.NewID(),
		Name:        OrganisationName(firstName),
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
