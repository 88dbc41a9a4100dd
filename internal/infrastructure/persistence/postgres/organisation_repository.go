package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communehq/commune/internal/application/ports"
	"github.com/communehq/commune/internal/domain"
	"github.com/communehq/commune/internal/infrastructure/persistence/db"
)

type OrganisationRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrganisationRepository(q *db.Queries, pool *pgxpool.Pool) *OrganisationRepository {
	return &OrganisationRepository{q: q, pool: pool}
}

// Create inserts the organisation and its creator membership in one
// transaction, so an organisation row can never exist without its creator
// in the membership set.
func (r *OrganisationRepository) Create(ctx context.Context, org *domain.Organisation) error {
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now()
	}
	if r.pool == nil {
		return r.createWith(ctx, r.q, org)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := r.createWith(ctx, r.q.WithTx(tx), org); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *OrganisationRepository) createWith(ctx context.Context, q *db.Queries, org *domain.Organisation) error {
	if _, err := q.CreateOrganisation(ctx, db.CreateOrganisationParams{
		Orgid:       org.ID,
		Name:        org.Name,
		Description: org.Description,
		CreatedBy:   org.CreatedBy,
		CreatedAt:   org.CreatedAt,
	}); err != nil {
		return err
	}
	return q.AddOrganisationMember(ctx, db.AddOrganisationMemberParams{
		Orgid:     org.ID,
		Userid:    org.CreatedBy,
		CreatedAt: org.CreatedAt,
	})
}

func (r *OrganisationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organisation, error) {
	o, err := r.q.GetOrganisationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbOrgToDomain(o), nil
}

func (r *OrganisationRepository) GetByIDForCreator(ctx context.Context, orgID, creatorID string) (*domain.Organisation, error) {
	o, err := r.q.GetOrganisationByIDForCreator(ctx, db.GetOrganisationByIDForCreatorParams{
		Orgid:     orgID,
		CreatedBy: creatorID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbOrgToDomain(o), nil
}

func (r *OrganisationRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Organisation, error) {
	list, err := r.q.ListOrganisationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Organisation, 0, len(list))
	for _, o := range list {
		out = append(out, dbOrgToDomain(o))
	}
	return out, nil
}

func (r *OrganisationRepository) AddMember(ctx context.Context, orgID, userID string) error {
	return r.q.AddOrganisationMember(ctx, db.AddOrganisationMemberParams{
		Orgid:     orgID,
		Userid:    userID,
		CreatedAt: time.Now(),
	})
}

func (r *OrganisationRepository) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	_, err := r.q.GetOrganisationMember(ctx, db.GetOrganisationMemberParams{Orgid: orgID, Userid: userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *OrganisationRepository) ListMembers(ctx context.Context, orgID string) ([]*domain.Member, error) {
	list, err := r.q.ListOrganisationMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Member, 0, len(list))
	for _, m := range list {
		out = append(out, &domain.Member{OrgID: m.Orgid, UserID: m.Userid, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *OrganisationRepository) SharesOrganisation(ctx context.Context, userID, otherID string) (bool, error) {
	return r.q.UsersShareOrganisation(ctx, db.UsersShareOrganisationParams{Userid: userID, OtherID: otherID})
}

func dbOrgToDomain(o db.Organisation) *domain.Organisation {
	return &domain.Organisation{
		ID:          o.Orgid,
		Name:        o.Name,
		Description: o.Description,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
	}
}

var _ ports.OrganisationRepository = (*OrganisationRepository)(nil)
