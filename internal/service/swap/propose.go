package swap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// ProposeSwap offers one of the caller's SWAPPABLE events in exchange for a
// SWAPPABLE event owned by someone else. Both events become SWAP_PENDING and
// a PENDING request addressed to the other owner is created.
//
// Both rows are locked in id order before they are checked, so of two
// concurrent proposals touching the same event exactly one succeeds and the
// other sees SWAP_PENDING and fails with ErrInvalidSlot.
func (s *Service) ProposeSwap(ctx context.Context, input ProposeInput) (domain.SwapRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SwapRequest{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		s.record(actionPropose, err)
		return domain.SwapRequest{}, err
	}
	if input.OfferedEventID == input.RequestedEventID {
		s.record(actionPropose, domain.ErrInvalidSlot)
		return domain.SwapRequest{}, fmt.Errorf("swap.Propose: same event on both sides: %w", domain.ErrInvalidSlot)
	}

	var created domain.SwapRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.events.LockByIDs(txCtx, input.OfferedEventID, input.RequestedEventID)
		if err != nil {
			return fmt.Errorf("lock events: %w", err)
		}

		offered, requested, err := pickProposal(locked, userID, input)
		if err != nil {
			return err
		}

		next, _ := domain.EventStatusSwappable.Apply(domain.TriggerSwapProposed)
		if _, err := s.events.SetStatus(txCtx, offered.UserID, offered.ID, offered.Status, next); err != nil {
			return fmt.Errorf("mark offered pending: %w", err)
		}
		if _, err := s.events.SetStatus(txCtx, requested.UserID, requested.ID, requested.Status, next); err != nil {
			return fmt.Errorf("mark requested pending: %w", err)
		}

		created, err = s.requests.Create(txCtx, domain.SwapRequest{
			ID:               uuid.New(),
			RequesterID:      userID,
			ReceiverID:       requested.UserID,
			OfferedEventID:   offered.ID,
			RequestedEventID: requested.ID,
			Status:           domain.SwapStatusPending,
			CreatedAt:        time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSwapRequest,
			EntityID:   &created.ID,
			Action:     domain.AuditActionPropose,
			Changes: map[string]any{
				"offered_event_id":   offered.ID.String(),
				"requested_event_id": requested.ID.String(),
				"receiver_id":        requested.UserID.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	s.record(actionPropose, err)
	if err != nil {
		return domain.SwapRequest{}, fmt.Errorf("swap.Propose: %w", err)
	}

	s.log.InfoContext(ctx, "swap proposed",
		slog.String("request_id", created.ID.String()),
		slog.String("requester_id", created.RequesterID.String()),
		slog.String("receiver_id", created.ReceiverID.String()),
	)

	return created, nil
}

// pickProposal checks the locked rows against the proposal rules: the offered
// event belongs to the caller, the requested one to somebody else, and both
// are SWAPPABLE.
func pickProposal(locked []domain.Event, userID uuid.UUID, input ProposeInput) (offered, requested domain.Event, err error) {
	var foundOffered, foundRequested bool
	for _, e := range locked {
		switch e.ID {
		case input.OfferedEventID:
			offered, foundOffered = e, true
		case input.RequestedEventID:
			requested, foundRequested = e, true
		}
	}

	switch {
	case !foundOffered:
		return offered, requested, fmt.Errorf("offered event not found: %w", domain.ErrInvalidSlot)
	case !foundRequested:
		return offered, requested, fmt.Errorf("requested event not found: %w", domain.ErrInvalidSlot)
	case !offered.IsOwnedBy(userID):
		return offered, requested, fmt.Errorf("offered event belongs to another user: %w", domain.ErrInvalidSlot)
	case requested.IsOwnedBy(userID):
		return offered, requested, fmt.Errorf("requested event is the caller's own: %w", domain.ErrInvalidSlot)
	case offered.Status != domain.EventStatusSwappable:
		return offered, requested, fmt.Errorf("offered event is %s: %w", offered.Status, domain.ErrInvalidSlot)
	case requested.Status != domain.EventStatusSwappable:
		return offered, requested, fmt.Errorf("requested event is %s: %w", requested.Status, domain.ErrInvalidSlot)
	}
	return offered, requested, nil
}
