// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/token/sqlc"
	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

const entity = "refresh_token"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token, filling in ID (when zero) and CreatedAt.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	createdAt, err := q.CreateRefreshToken(ctx, sqlc.CreateRefreshTokenParams{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	})
	if err != nil {
		return postgres.MapError(err, entity, token.ID)
	}

	token.CreatedAt = createdAt
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	t := toDomain(row)
	return &t, nil
}

// RevokeByID revokes an active refresh token by setting revoked_at.
// Returns domain.ErrNotFound when the token is unknown or already revoked,
// so a token can be spent by exactly one caller.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.RevokeRefreshTokenByID(ctx, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	if err := q.RevokeAllRefreshTokensByUser(ctx, userID); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns how many
// were deleted. May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return int(n), nil
}

// toDomain converts a sqlc.RefreshToken row into a domain.RefreshToken.
func toDomain(row sqlc.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}
}
