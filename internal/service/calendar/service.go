package calendar

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

//go:generate moq -out repo_mock_test.go -pkg calendar . eventRepo auditLogger txManager

type eventRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error)
	ListSwappableExcluding(ctx context.Context, userID uuid.UUID) ([]domain.MarketSlot, error)
	LockByIDs(ctx context.Context, ids ...uuid.UUID) ([]domain.Event, error)
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
	SetStatus(ctx context.Context, ownerID, id uuid.UUID, from, to domain.EventStatus) (domain.Event, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the owner's view of their calendar and the marketplace
// of slots other users are willing to trade.
type Service struct {
	events eventRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Calendar service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		events: events,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "calendar"),
	}
}

// lockOwned locks the event row for the rest of the transaction and checks
// that userID owns it. A foreign event is reported as not found.
func (s *Service) lockOwned(ctx context.Context, userID, eventID uuid.UUID) (domain.Event, error) {
	locked, err := s.events.LockByIDs(ctx, eventID)
	if err != nil {
		return domain.Event{}, err
	}
	if len(locked) == 0 || !locked[0].IsOwnedBy(userID) {
		return domain.Event{}, domain.ErrNotFound
	}
	return locked[0], nil
}
