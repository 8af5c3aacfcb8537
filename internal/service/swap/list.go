package swap

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/pkg/ctxutil"
)

// ListMySwapRequests returns every request the caller sent or received,
// newest first.
func (s *Service) ListMySwapRequests(ctx context.Context) ([]domain.SwapRequestDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.requests.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("swap.ListMySwapRequests: %w", err)
	}
	return list, nil
}

// GetSwapRequest returns a single request. Requests the caller is not a
// party to are reported as not found.
func (s *Service) GetSwapRequest(ctx context.Context, id uuid.UUID) (domain.SwapRequestDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SwapRequestDetails{}, domain.ErrUnauthorized
	}

	d, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SwapRequestDetails{}, domain.ErrNotFound
		}
		return domain.SwapRequestDetails{}, fmt.Errorf("swap.GetSwapRequest: %w", err)
	}
	if !d.InvolvesUser(userID) {
		return domain.SwapRequestDetails{}, domain.ErrNotFound
	}
	return d, nil
}
