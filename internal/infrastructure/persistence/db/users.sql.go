package db

import (
	"context"
	"time"
)

const createUser = `
INSERT INTO users (userid, firstname, lastname, email, password_hash, phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING userid, firstname, lastname, email, password_hash, phone, created_at
`

type CreateUserParams struct {
	Userid       string
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Userid,
		arg.Firstname,
		arg.Lastname,
		arg.Email,
		arg.PasswordHash,
		arg.Phone,
		arg.CreatedAt,
	)
	var u User
	err := row.Scan(&u.Userid, &u.Firstname, &u.Lastname, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	return u, err
}

const getUserByID = `
SELECT userid, firstname, lastname, email, password_hash, phone, created_at
FROM users WHERE userid = $1 LIMIT 1
`

func (q *Queries) GetUserByID(ctx context.Context, userid string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, userid)
	var u User
	err := row.Scan(&u.Userid, &u.Firstname, &u.Lastname, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	return u, err
}

const getUserByEmail = `
SELECT userid, firstname, lastname, email, password_hash, phone, created_at
FROM users WHERE email = $1 LIMIT 1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.Userid, &u.Firstname, &u.Lastname, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	return u, err
}

const getUserByEmailOrPhone = `
SELECT userid, firstname, lastname, email, password_hash, phone, created_at
FROM users WHERE email = $1 OR phone = $2 LIMIT 1
`

type GetUserByEmailOrPhoneParams struct {
	Email string
	Phone string
}

func (q *Queries) GetUserByEmailOrPhone(ctx context.Context, arg GetUserByEmailOrPhoneParams) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmailOrPhone, arg.Email, arg.Phone)
	var u User
	err := row.Scan(&u.Userid, &u.Firstname, &u.Lastname, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	return u, err
}
