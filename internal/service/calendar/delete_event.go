package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// DeleteEvent removes one of the user's events. Events that are part of a
// pending swap cannot be deleted until the swap is resolved.
func (s *Service) DeleteEvent(ctx context.Context, input DeleteEventInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.lockOwned(txCtx, userID, input.EventID)
		if err != nil {
			return err
		}
		if current.Status == domain.EventStatusSwapPending {
			return fmt.Errorf("event has a pending swap: %w", domain.ErrConflict)
		}

		if err := s.events.Delete(txCtx, userID, current.ID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &current.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": current.Title},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("calendar.DeleteEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)

	return nil
}
