package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// CreateEvent adds a slot to the authenticated user's calendar.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	status := input.Status
	if status == "" {
		status = domain.EventStatusBusy
	}

	var created domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.events.Create(txCtx, domain.Event{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     strings.TrimSpace(input.Title),
			StartTime: input.StartTime.UTC().Truncate(time.Microsecond),
			EndTime:   input.EndTime.UTC().Truncate(time.Microsecond),
			Status:    status,
		})
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":  map[string]any{"new": created.Title},
				"status": map[string]any{"new": created.Status},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("calendar.CreateEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
