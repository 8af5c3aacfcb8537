// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/user/sqlc"
	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetUserByID(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := toDomainUser(row)
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// The email is stored lower-cased; a duplicate returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           u.ID,
		Name:         u.Name,
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created := toDomainUser(row)
	return &created, nil
}

// toDomainUser converts a sqlc.User row into a domain.User.
func toDomainUser(row sqlc.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
