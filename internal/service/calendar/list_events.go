package calendar

import (
	"context"
	"fmt"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// ListEvents returns the authenticated user's events ordered by start time.
func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calendar.ListEvents: %w", err)
	}
	return events, nil
}

// ListSwappableSlots returns every SWAPPABLE event owned by someone other
// than the authenticated user, with the owner's name and email.
func (s *Service) ListSwappableSlots(ctx context.Context) ([]domain.MarketSlot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slots, err := s.events.ListSwappableExcluding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calendar.ListSwappableSlots: %w", err)
	}
	return slots, nil
}
