package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// Profile is the authenticated user with a summary of their calendar and
// open negotiations.
type Profile struct {
	User *domain.User

	// EventsByStatus counts the user's events; every status is present.
	EventsByStatus map[domain.EventStatus]int

	// PendingIncoming counts PENDING requests awaiting the user's answer,
	// PendingOutgoing those the user is waiting on.
	PendingIncoming int
	PendingOutgoing int
}

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	events, err := s.events.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: list events: %w", err)
	}

	requests, err := s.requests.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: list requests: %w", err)
	}

	p := &Profile{
		User: user,
		EventsByStatus: map[domain.EventStatus]int{
			domain.EventStatusBusy:        0,
			domain.EventStatusSwappable:   0,
			domain.EventStatusSwapPending: 0,
		},
	}
	for _, e := range events {
		p.EventsByStatus[e.Status]++
	}
	for _, r := range requests {
		if r.Status != domain.SwapStatusPending {
			continue
		}
		if r.ReceiverID == userID {
			p.PendingIncoming++
		} else {
			p.PendingOutgoing++
		}
	}

	return p, nil
}
