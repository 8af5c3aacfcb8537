package swap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// RespondToSwap lets the receiver of a PENDING request accept or reject it.
//
// Accepting trades ownership: the offered event goes to the receiver, the
// requested event to the requester, and both become BUSY. Rejecting returns
// both events to SWAPPABLE with their owners unchanged.
//
// An unknown id, a caller who is not the receiver and a request that is no
// longer PENDING all report ErrNotFound. Any failure rolls the whole
// transition back and the request stays PENDING.
func (s *Service) RespondToSwap(ctx context.Context, input RespondInput) (domain.SwapRequestDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SwapRequestDetails{}, domain.ErrUnauthorized
	}

	action, status, trig, auditAction := actionReject, domain.SwapStatusRejected, domain.TriggerSwapRejected, domain.AuditActionReject
	if input.Accept {
		action, status, trig, auditAction = actionAccept, domain.SwapStatusAccepted, domain.TriggerSwapAccepted, domain.AuditActionAccept
	}

	if err := input.Validate(); err != nil {
		s.record(action, err)
		return domain.SwapRequestDetails{}, err
	}

	var details domain.SwapRequestDetails
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.Resolve(txCtx, input.RequestID, userID, status)
		if err != nil {
			return fmt.Errorf("resolve request: %w", err)
		}

		if _, err := s.events.LockByIDs(txCtx, req.OfferedEventID, req.RequestedEventID); err != nil {
			return fmt.Errorf("lock events: %w", err)
		}

		if input.Accept {
			if _, err := s.events.Reassign(txCtx, req.OfferedEventID, req.RequesterID, req.ReceiverID); err != nil {
				return fmt.Errorf("reassign offered: %w", err)
			}
			if _, err := s.events.Reassign(txCtx, req.RequestedEventID, req.ReceiverID, req.RequesterID); err != nil {
				return fmt.Errorf("reassign requested: %w", err)
			}
		} else {
			next, _ := domain.EventStatusSwapPending.Apply(trig)
			if _, err := s.events.SetStatus(txCtx, req.RequesterID, req.OfferedEventID, domain.EventStatusSwapPending, next); err != nil {
				return fmt.Errorf("release offered: %w", err)
			}
			if _, err := s.events.SetStatus(txCtx, req.ReceiverID, req.RequestedEventID, domain.EventStatusSwapPending, next); err != nil {
				return fmt.Errorf("release requested: %w", err)
			}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSwapRequest,
			EntityID:   &req.ID,
			Action:     auditAction,
			Changes: map[string]any{
				"status": map[string]any{"old": domain.SwapStatusPending, "new": req.Status},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		details, err = s.requests.GetByID(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("reload request: %w", err)
		}
		return nil
	})
	s.record(action, err)
	if err != nil {
		return domain.SwapRequestDetails{}, fmt.Errorf("swap.Respond: %w", err)
	}

	s.log.InfoContext(ctx, "swap resolved",
		slog.String("request_id", details.ID.String()),
		slog.String("status", details.Status.String()),
		slog.String("receiver_id", userID.String()),
	)

	return details, nil
}
