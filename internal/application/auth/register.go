package auth

import (
	"context"
	"strings"
	"time"

	"github.com/communehq/commune/internal/application/org"
	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/identity"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

type RegisterResult struct {
	AccessToken  string
	User         *domain.User
	Organisation *domain.Organisation
}

// Register creates the user, their default organisation, and a first
// access token. The two writes are dependent but not wrapped in a shared
// transaction: a failed organisation insert leaves the user row in place,
// matching the behaviour this service replaces. Duplicate registration is
// also closed off by unique indexes on email and phone.
type Register struct {
	users     ports.UserRepository
	createOrg *org.Create
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
}

func NewRegister(users ports.UserRepository, createOrg *org.Create, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Register {
	return &Register{users: users, createOrg: createOrg, hasher: hasher, issuer: issuer}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := uc.users.GetByEmailOrPhone(ctx, email, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           identity.DeriveID(email),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	organisation, err := uc.createOrg.CreateDefault(ctx, user.FirstName, user.ID)
	if err != nil {
		return nil, err
	}
	token, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{
		AccessToken:  token,
		User:         user,
		Organisation: organisation,
	}, nil
}
