package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// SetEventStatus toggles one of the user's events between BUSY and
// SWAPPABLE. An event locked in a pending swap cannot be changed.
// Asking for the status the event already has is a no-op.
func (s *Service) SetEventStatus(ctx context.Context, input SetStatusInput) (domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	trig, _ := domain.OwnerTrigger(input.Status)

	var (
		updated domain.Event
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.lockOwned(txCtx, userID, input.EventID)
		if err != nil {
			return err
		}

		if current.Status == input.Status {
			updated = current
			return nil
		}
		next, ok := current.Status.Apply(trig)
		if !ok {
			return fmt.Errorf("event is %s: %w", current.Status, domain.ErrConflict)
		}

		updated, err = s.events.SetStatus(txCtx, userID, current.ID, current.Status, next)
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		changed = true

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &current.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status": map[string]any{"old": current.Status, "new": next},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("calendar.SetEventStatus: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "event status changed",
			slog.String("user_id", userID.String()),
			slog.String("event_id", updated.ID.String()),
			slog.String("status", updated.Status.String()),
		)
	}

	return updated, nil
}
