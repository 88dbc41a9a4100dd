package db

import (
	"context"
	"time"
)

const createOrganisation = `
INSERT INTO organisation (orgid, name, description, created_by, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING orgid, name, description, created_by, created_at
`

type CreateOrganisationParams struct {
	Orgid       string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

func (q *Queries) CreateOrganisation(ctx context.Context, arg CreateOrganisationParams) (Organisation, error) {
	row := q.db.QueryRow(ctx, createOrganisation,
		arg.Orgid,
		arg.Name,
		arg.Description,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	var o Organisation
	err := row.Scan(&o.Orgid, &o.Name, &o.Description, &o.CreatedBy, &o.CreatedAt)
	return o, err
}

const getOrganisationByID = `
SELECT orgid, name, description, created_by, created_at
FROM organisation WHERE orgid = $1 LIMIT 1
`

func (q *Queries) GetOrganisationByID(ctx context.Context, orgid string) (Organisation, error) {
	row := q.db.QueryRow(ctx, getOrganisationByID, orgid)
	var o Organisation
	err := row.Scan(&o.Orgid, &o.Name, &o.Description, &o.CreatedBy, &o.CreatedAt)
	return o, err
}

const getOrganisationByIDForCreator = `
SELECT orgid, name, description, created_by, created_at
FROM organisation WHERE orgid = $1 AND created_by = $2 LIMIT 1
`

type GetOrganisationByIDForCreatorParams struct {
	Orgid     string
	CreatedBy string
}

func (q *Queries) GetOrganisationByIDForCreator(ctx context.Context, arg GetOrganisationByIDForCreatorParams) (Organisation, error) {
	row := q.db.QueryRow(ctx, getOrganisationByIDForCreator, arg.Orgid, arg.CreatedBy)
	var o Organisation
	err := row.Scan(&o.Orgid, &o.Name, &o.Description, &o.CreatedBy, &o.CreatedAt)
	return o, err
}

const listOrganisationsForUser = `
SELECT o.orgid, o.name, o.description, o.created_by, o.created_at
FROM organisation o
JOIN organisation_members m ON m.orgid = o.orgid
WHERE m.userid = $1
ORDER BY o.created_at
`

func (q *Queries) ListOrganisationsForUser(ctx context.Context, userid string) ([]Organisation, error) {
	rows, err := q.db.Query(ctx, listOrganisationsForUser, userid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Organisation
	for rows.Next() {
		var o Organisation
		if err := rows.Scan(&o.Orgid, &o.Name, &o.Description, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const addOrganisationMember = `
INSERT INTO organisation_members (orgid, userid, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (orgid, userid) DO NOTHING
`

type AddOrganisationMemberParams struct {
	Orgid     string
	Userid    string
	CreatedAt time.Time
}

func (q *Queries) AddOrganisationMember(ctx context.Context, arg AddOrganisationMemberParams) error {
	_, err := q.db.Exec(ctx, addOrganisationMember, arg.Orgid, arg.Userid, arg.CreatedAt)
	return err
}

const getOrganisationMember = `
SELECT orgid, userid, created_at
FROM organisation_members WHERE orgid = $1 AND userid = $2 LIMIT 1
`

type GetOrganisationMemberParams struct {
	Orgid  string
	Userid string
}

func (q *Queries) GetOrganisationMember(ctx context.Context, arg GetOrganisationMemberParams) (OrganisationMember, error) {
	row := q.db.QueryRow(ctx, getOrganisationMember, arg.Orgid, arg.Userid)
	var m OrganisationMember
	err := row.Scan(&m.Orgid, &m.Userid, &m.CreatedAt)
	return m, err
}

const listOrganisationMembers = `
SELECT orgid, userid, created_at
FROM organisation_members WHERE orgid = $1
ORDER BY created_at
`

func (q *Queries) ListOrganisationMembers(ctx context.Context, orgid string) ([]OrganisationMember, error) {
	rows, err := q.db.Query(ctx, listOrganisationMembers, orgid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrganisationMember
	for rows.Next() {
		var m OrganisationMember
		if err := rows.Scan(&m.Orgid, &m.Userid, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const usersShareOrganisation = `
SELECT EXISTS (
	SELECT 1 FROM organisation_members a
	JOIN organisation_members b ON a.orgid = b.orgid
	WHERE a.userid = $1 AND b.userid = $2
)
`

type UsersShareOrganisationParams struct {
	Userid  string
	OtherID string
}

func (q *Queries) UsersShareOrganisation(ctx context.Context, arg UsersShareOrganisationParams) (bool, error) {
	row := q.db.QueryRow(ctx, usersShareOrganisation, arg.Userid, arg.OtherID)
	var shared bool
	err := row.Scan(&shared)
	return shared, err
}
