// Package event implements the calendar event store using PostgreSQL.
package event

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/event/sqlc"
	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

const entity = "event"

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the event with the given id regardless of its owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, id)
	}
	return toDomainEvent(row), nil
}

// ListByOwner returns all events owned by ownerID ordered by start time.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListEventsByOwner(ctx, ownerID)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return toDomainEvents(rows), nil
}

// ListSwappableExcluding returns every SWAPPABLE event not owned by userID,
// with the owner's name and email, ordered by start time.
func (r *Repo) ListSwappableExcluding(ctx context.Context, userID uuid.UUID) ([]domain.MarketSlot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(
			"e.id", "e.user_id", "e.title", "e.start_time", "e.end_time", "e.status",
			"e.created_at", "e.updated_at", "u.name", "u.email",
		).
		From("events e").
		Join("users u ON u.id = e.user_id").
		Where(sq.Eq{"e.status": string(domain.EventStatusSwappable)}).
		Where(sq.NotEq{"e.user_id": userID}).
		OrderBy("e.start_time", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build swappable query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	defer rows.Close()

	slots := make([]domain.MarketSlot, 0)
	for rows.Next() {
		var (
			s      domain.MarketSlot
			status string
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Title, &s.StartTime, &s.EndTime, &status,
			&s.CreatedAt, &s.UpdatedAt, &s.OwnerName, &s.OwnerEmail,
		); err != nil {
			return nil, postgres.MapError(err, entity, uuid.Nil)
		}
		s.Status = domain.EventStatus(status)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return slots, nil
}

// LockByIDs loads the given events with row locks held until the surrounding
// transaction ends. Rows are locked in id order so that two transactions
// locking the same pair cannot deadlock. Missing ids are simply absent from
// the result. Must be called inside TxManager.RunInTx.
func (r *Repo) LockByIDs(ctx context.Context, ids ...uuid.UUID) ([]domain.Event, error) {
	if !postgres.InTx(ctx) {
		return nil, errors.New("event.LockByIDs: must run inside a transaction")
	}
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.LockEventsByIDs(ctx, ids)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return toDomainEvents(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateEvent(ctx, sqlc.CreateEventParams{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	})
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, e.ID)
	}
	return toDomainEvent(row), nil
}

// SetStatus moves an event owned by ownerID from status from to status to.
// Returns domain.ErrNotFound when no such event belongs to ownerID and
// domain.ErrConflict when it exists but is no longer in status from.
func (r *Repo) SetStatus(ctx context.Context, ownerID, id uuid.UUID, from, to domain.EventStatus) (domain.Event, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.SetEventStatus(ctx, sqlc.SetEventStatusParams{
		ToStatus:   string(to),
		ID:         id,
		UserID:     ownerID,
		FromStatus: string(from),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Event{}, r.explainMiss(ctx, id, ownerID)
	}
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, id)
	}
	return toDomainEvent(row), nil
}

// Reassign hands a SWAP_PENDING event owned by fromOwner over to toOwner and
// marks it BUSY. domain.ErrConflict when the event is not in that state.
func (r *Repo) Reassign(ctx context.Context, id, fromOwner, toOwner uuid.UUID) (domain.Event, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.ReassignEvent(ctx, sqlc.ReassignEventParams{
		NewOwner: toOwner,
		ID:       id,
		OldOwner: fromOwner,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Event{}, fmt.Errorf("%s %s: reassign: %w", entity, id, domain.ErrConflict)
	}
	if err != nil {
		return domain.Event{}, postgres.MapError(err, entity, id)
	}
	return toDomainEvent(row), nil
}

// Delete removes an event owned by ownerID.
// Returns domain.ErrNotFound if zero rows were affected.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.DeleteEvent(ctx, sqlc.DeleteEventParams{ID: id, UserID: ownerID})
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// explainMiss tells apart an event that does not belong to ownerID from one
// that changed status underneath a guarded update.
func (r *Repo) explainMiss(ctx context.Context, id, ownerID uuid.UUID) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	exists, err := q.EventOwnedBy(ctx, sqlc.EventOwnedByParams{ID: id, UserID: ownerID})
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: status changed: %w", entity, id, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Mapping helpers: sqlc -> domain
// ---------------------------------------------------------------------------

func toDomainEvent(row sqlc.Event) domain.Event {
	return domain.Event{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Status:    domain.EventStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainEvents(rows []sqlc.Event) []domain.Event {
	events := make([]domain.Event, len(rows))
	for i, row := range rows {
		events[i] = toDomainEvent(row)
	}
	return events
}
