// Package swaprequest implements the swap ledger using PostgreSQL.
package swaprequest

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/swaprequest/sqlc"
	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

const entity = "swap_request"

// Repo provides swap request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new swap request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request. A second PENDING request on either event
// violates a partial unique index and returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, req domain.SwapRequest) (domain.SwapRequest, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateSwapRequest(ctx, sqlc.CreateSwapRequestParams{
		ID:               req.ID,
		RequesterID:      req.RequesterID,
		ReceiverID:       req.ReceiverID,
		OfferedEventID:   req.OfferedEventID,
		RequestedEventID: req.RequestedEventID,
		Status:           string(req.Status),
		CreatedAt:        req.CreatedAt,
	})
	if err != nil {
		return domain.SwapRequest{}, postgres.MapError(err, entity, req.ID)
	}
	return toDomainRequest(row), nil
}

// Resolve moves a PENDING request addressed to receiverID into the terminal
// status and stamps responded_at. An unknown id, another receiver and an
// already resolved request all return domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, id, receiverID uuid.UUID, status domain.SwapStatus) (domain.SwapRequest, error) {
	if !status.IsTerminal() {
		return domain.SwapRequest{}, fmt.Errorf("%s %s: resolve to %s: %w", entity, id, status, domain.ErrValidation)
	}
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.ResolveSwapRequest(ctx, sqlc.ResolveSwapRequestParams{
		Status:     string(status),
		ID:         id,
		ReceiverID: receiverID,
	})
	if err != nil {
		return domain.SwapRequest{}, postgres.MapError(err, entity, id)
	}
	return toDomainRequest(row), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the request with party names and the current state of both
// events.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.SwapRequestDetails, error) {
	query, args, err := detailsQuery().Where(sq.Eq{"sr.id": id}).ToSql()
	if err != nil {
		return domain.SwapRequestDetails{}, fmt.Errorf("build swap request query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	d, err := scanDetails(row)
	if err != nil {
		return domain.SwapRequestDetails{}, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// ListForUser returns every request where userID is requester or receiver,
// newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequestDetails, error) {
	query, args, err := detailsQuery().
		Where(sq.Or{
			sq.Eq{"sr.requester_id": userID},
			sq.Eq{"sr.receiver_id": userID},
		}).
		OrderBy("sr.created_at DESC", "sr.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build swap request list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	defer rows.Close()

	list := make([]domain.SwapRequestDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, uuid.Nil)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return list, nil
}

// ---------------------------------------------------------------------------
// Query / scan helpers
// ---------------------------------------------------------------------------

func detailsQuery() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"sr.id", "sr.requester_id", "sr.receiver_id", "sr.offered_event_id", "sr.requested_event_id",
			"sr.status", "sr.created_at", "sr.responded_at",
			"ru.name", "rv.name",
			"oe.title", "oe.start_time", "oe.end_time", "oe.user_id",
			"qe.title", "qe.start_time", "qe.end_time", "qe.user_id",
		).
		From("swap_requests sr").
		Join("users ru ON ru.id = sr.requester_id").
		Join("users rv ON rv.id = sr.receiver_id").
		Join("events oe ON oe.id = sr.offered_event_id").
		Join("events qe ON qe.id = sr.requested_event_id")
}

func toDomainRequest(row sqlc.SwapRequest) domain.SwapRequest {
	return domain.SwapRequest{
		ID:               row.ID,
		RequesterID:      row.RequesterID,
		ReceiverID:       row.ReceiverID,
		OfferedEventID:   row.OfferedEventID,
		RequestedEventID: row.RequestedEventID,
		Status:           domain.SwapStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		RespondedAt:      row.RespondedAt,
	}
}

func scanDetails(row pgx.Row) (domain.SwapRequestDetails, error) {
	var (
		d      domain.SwapRequestDetails
		status string
	)
	err := row.Scan(
		&d.ID, &d.RequesterID, &d.ReceiverID, &d.OfferedEventID, &d.RequestedEventID,
		&status, &d.CreatedAt, &d.RespondedAt,
		&d.RequesterName, &d.ReceiverName,
		&d.Offered.Title, &d.Offered.StartTime, &d.Offered.EndTime, &d.Offered.OwnerID,
		&d.Requested.Title, &d.Requested.StartTime, &d.Requested.EndTime, &d.Requested.OwnerID,
	)
	if err != nil {
		return domain.SwapRequestDetails{}, err
	}
	d.Status = domain.SwapStatus(status)
	return d, nil
}
