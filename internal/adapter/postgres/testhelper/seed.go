package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpla",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEvent creates a one-hour event for userID in the given status.
// Start times are spread out by a random offset so lists have a stable order.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.EventStatus) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	start := now.Add(24 * time.Hour).Add(time.Duration(uuid.New().ID()%10000) * time.Minute)
	event := domain.Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Slot " + uniqueSuffix(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, user_id, title, start_time, end_time, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.UserID, event.Title, event.StartTime, event.EndTime, string(event.Status),
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedSwapRequest creates a request in the given status between the owners of
// offered and requested. It does not touch the events' statuses.
func SeedSwapRequest(t *testing.T, pool *pgxpool.Pool, offered, requested domain.Event, status domain.SwapStatus) domain.SwapRequest {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.SwapRequest{
		ID:               uuid.New(),
		RequesterID:      offered.UserID,
		ReceiverID:       requested.UserID,
		OfferedEventID:   offered.ID,
		RequestedEventID: requested.ID,
		Status:           status,
		CreatedAt:        now,
	}
	if status.IsTerminal() {
		req.RespondedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO swap_requests (id, requester_id, receiver_id, offered_event_id, requested_event_id, status, created_at, responded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.RequesterID, req.ReceiverID, req.OfferedEventID, req.RequestedEventID,
		string(req.Status), req.CreatedAt, req.RespondedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSwapRequest insert: %v", err)
	}

	return req
}
