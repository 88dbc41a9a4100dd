package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/communehq/commune/internal/application/auth"
	"github.com/communehq/commune/internal/application/org"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/identity"
	"github.com/communehq/commune/internal/infrastructure/persistence/memory"
	"github.com/communehq/commune/internal/infrastructure/security"
)

func newRegister(users *memory.UserStore, orgs *memory.OrgStore) *auth.Register {
	hasher := security.NewArgon2Hasher(testParams())
	issuer := identity.NewTokenIssuer("test-secret-test-secret-test!!!!", 3600)
	return auth.NewRegister(users, org.NewCreate(orgs), hasher, issuer)
}

func testParams() security.Argon2Params {
	// Cheap parameters keep the test fast; production values come from config.
	return security.Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

var simon = auth.RegisterInput{
	FirstName: "Simon",
	LastName:  "Ugorji",
	Email:     "me@you.com",
	Password:  "12345678",
	Phone:     "08102990892",
}

func TestRegisterCreatesUserAndDefaultOrganisation(t *testing.T) {
	users := memory.NewUserStore()
	orgs := memory.NewOrgStore()
	uc := newRegister(users, orgs)

	result, err := uc.Execute(context.Background(), simon)
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, "Simon's Organisation", result.Organisation.Name)
	require.Equal(t, identity.DeriveID("me@you.com"), result.User.ID)
	require.Equal(t, result.User.ID, result.Organisation.CreatedBy)

	member, err := orgs.IsMember(context.Background(), result.Organisation.ID, result.User.ID)
	require.NoError(t, err)
	require.True(t, member, "creator must be a member of the default organisation")

	stored, err := users.GetByEmail(context.Background(), "me@you.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, "12345678", stored.PasswordHash)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	users := memory.NewUserStore()
	uc := newRegister(users, memory.NewOrgStore())

	_, err := uc.Execute(context.Background(), simon)
	require.NoError(t, err)

	second := simon
	second.Phone = "00000000000"
	_, err = uc.Execute(context.Background(), second)
	require.ErrorIs(t, err, domerrors.ErrUserExists)
}

func TestRegisterDuplicatePhoneRejected(t *testing.T) {
	users := memory.NewUserStore()
	uc := newRegister(users, memory.NewOrgStore())

	_, err := uc.Execute(context.Background(), simon)
	require.NoError(t, err)

	second := simon
	second.Email = "other@you.com"
	_, err = uc.Execute(context.Background(), second)
	require.ErrorIs(t, err, domerrors.ErrUserExists)
}

func TestRegisterNormalisesEmailForIdentity(t *testing.T) {
	users := memory.NewUserStore()
	uc := newRegister(users, memory.NewOrgStore())

	input := simon
	input.Email = "  Me@You.com "
	result, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, "me@you.com", result.User.Email)
	require.Equal(t, identity.DeriveID("me@you.com"), result.User.ID)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	users := memory.NewUserStore()
	orgs := memory.NewOrgStore()
	hasher := security.NewArgon2Hasher(testParams())
	issuer := identity.NewTokenIssuer("test-secret-test-secret-test!!!!", 3600)
	registerUC := auth.NewRegister(users, org.NewCreate(orgs), hasher, issuer)
	loginUC := auth.NewLogin(users, hasher, issuer)

	registered, err := registerUC.Execute(context.Background(), simon)
	require.NoError(t, err)

	result, err := loginUC.Execute(context.Background(), auth.LoginInput{Email: "me@you.com", Password: "12345678"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, registered.User.ID, result.User.ID)

	userID, err := issuer.Validate(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, userID)
}

func TestLoginUniformFailure(t *testing.T) {
	users := memory.NewUserStore()
	orgs := memory.NewOrgStore()
	hasher := security.NewArgon2Hasher(testParams())
	issuer := identity.NewTokenIssuer("test-secret-test-secret-test!!!!", 3600)
	registerUC := auth.NewRegister(users, org.NewCreate(orgs), hasher, issuer)
	loginUC := auth.NewLogin(users, hasher, issuer)

	_, err := registerUC.Execute(context.Background(), simon)
	require.NoError(t, err)

	_, wrongPassword := loginUC.Execute(context.Background(), auth.LoginInput{Email: "me@you.com", Password: "nope"})
	_, unknownEmail := loginUC.Execute(context.Background(), auth.LoginInput{Email: "nobody@you.com", Password: "12345678"})

	// Unknown account and wrong password must be indistinguishable.
	require.ErrorIs(t, wrongPassword, domerrors.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, domerrors.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
