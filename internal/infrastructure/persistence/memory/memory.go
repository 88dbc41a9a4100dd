// Package memory provides in-memory implementations of the persistence
// ports, suitable for tests and single-process experiments. Each store is
// safe for concurrent use.
package memory

import (
	"context"
	"sync"

	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
)

// UserStore is an in-memory ports.UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*domain.User)}
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[u.ID] = &u
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *UserStore) GetByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email || u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// OrgStore is an in-memory ports.OrganisationRepository.
type OrgStore struct {
	mu      sync.RWMutex
	orgs    map[string]*domain.Organisation
	members map[string][]string // orgID -> userIDs, insertion order
}

func NewOrgStore() *OrgStore {
	return &OrgStore{
		orgs:    make(map[string]*domain.Organisation),
		members: make(map[string][]string),
	}
}

func (s *OrgStore) Create(ctx context.Context, org *domain.Organisation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *org
	s.orgs[o.ID] = &o
	s.members[o.ID] = []string{o.CreatedBy}
	return nil
}

func (s *OrgStore) GetByID(ctx context.Context, orgID string) (*domain.Organisation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orgs[orgID]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (s *OrgStore) GetByIDForCreator(ctx context.Context, orgID, creatorID string) (*domain.Organisation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orgs[orgID]
	if !ok || o.CreatedBy != creatorID {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (s *OrgStore) ListForUser(ctx context.Context, userID string) ([]*domain.Organisation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Organisation
	for orgID, userIDs := range s.members {
		for _, id := range userIDs {
			if id == userID {
				copied := *s.orgs[orgID]
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (s *OrgStore) AddMember(ctx context.Context, orgID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.members[orgID] {
		if id == userID {
			return nil
		}
	}
	s.members[orgID] = append(s.members[orgID], userID)
	return nil
}

func (s *OrgStore) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.members[orgID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *OrgStore) ListMembers(ctx context.Context, orgID string) ([]*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.members[orgID]
	out := make([]*domain.Member, 0, len(ids))
	for _, id := range ids {
		out = append(out, &domain.Member{OrgID: orgID, UserID: id})
	}
	return out, nil
}

func (s *OrgStore) SharesOrganisation(ctx context.Context, userID, otherID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, userIDs := range s.members {
		var hasFirst, hasSecond bool
		for _, id := range userIDs {
			if id == userID {
				hasFirst = true
			}
			if id == otherID {
				hasSecond = true
			}
		}
		if hasFirst && hasSecond {
			return true, nil
		}
	}
	return false, nil
}

var (
	_ ports.UserRepository         = (*UserStore)(nil)
	_ ports.OrganisationRepository = (*OrgStore)(nil)
)
