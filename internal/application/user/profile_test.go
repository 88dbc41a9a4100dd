package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/communehq/commune/internal/application/org"
	"github.com/communehq/commune/internal/application/user"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/persistence/memory"
)

func TestGetProfileOwn(t *testing.T) {
	users := memory.NewUserStore()
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "u1", Email: "a@b.c"}))

	uc := user.NewGetProfile(users, memory.NewOrgStore())

	got, err := uc.Execute(context.Background(), user.ProfileInput{RequesterID: "u1", TargetID: "u1"})
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
}

func TestGetProfilePeerRequiresSharedOrganisation(t *testing.T) {
	users := memory.NewUserStore()
	orgs := memory.NewOrgStore()
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "u1", Email: "a@b.c"}))
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "u2", Email: "d@e.f"}))
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "u3", Email: "g@h.i"}))

	created, err := org.NewCreate(orgs).Execute(context.Background(), org.CreateInput{
		UserID: "u1", Name: "shared", Description: "d",
	})
	require.NoError(t, err)
	require.NoError(t, orgs.AddMember(context.Background(), created.Organisation.ID, "u2"))

	uc := user.NewGetProfile(users, orgs)

	got, err := uc.Execute(context.Background(), user.ProfileInput{RequesterID: "u1", TargetID: "u2"})
	require.NoError(t, err)
	require.Equal(t, "u2", got.ID)

	// u3 shares nothing with u1; the profile reads as missing.
	_, err = uc.Execute(context.Background(), user.ProfileInput{RequesterID: "u1", TargetID: "u3"})
	require.ErrorIs(t, err, domerrors.ErrUserNotFound)

	_, err = uc.Execute(context.Background(), user.ProfileInput{RequesterID: "u1", TargetID: "nope"})
	require.ErrorIs(t, err, domerrors.ErrUserNotFound)
}
