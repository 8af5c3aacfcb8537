// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/audit/sqlc"
	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// Zero ID and CreatedAt are filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	row, err := q.CreateAuditRecord(ctx, sqlc.CreateAuditRecordParams{
		ID:         record.ID,
		UserID:     record.UserID,
		EntityType: string(record.EntityType),
		EntityID:   uuidPtrToPgUUID(record.EntityID),
		Action:     string(record.Action),
		Changes:    changesJSON,
		CreatedAt:  record.CreatedAt,
	})
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return toDomainAuditRecord(row)
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the calendar and swap services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.GetByEntity(ctx, sqlc.GetByEntityParams{
		EntityType: string(entityType),
		EntityID:   pgtype.UUID{Bytes: entityID, Valid: true},
		Lim:        int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomainAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: sqlc -> domain
// ---------------------------------------------------------------------------

// toDomainAuditRecord converts a sqlc.AuditLog row into a domain.AuditRecord.
func toDomainAuditRecord(row sqlc.AuditLog) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.EntityType(row.EntityType),
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}

	if row.EntityID.Valid {
		id := uuid.UUID(row.EntityID.Bytes)
		record.EntityID = &id
	}

	if len(row.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
