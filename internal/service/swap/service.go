package swap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

//go:generate moq -out repo_mock_test.go -pkg swap . eventRepo requestRepo auditLogger txManager transitionRecorder

type eventRepo interface {
	LockByIDs(ctx context.Context, ids ...uuid.UUID) ([]domain.Event, error)
	SetStatus(ctx context.Context, ownerID, id uuid.UUID, from, to domain.EventStatus) (domain.Event, error)
	Reassign(ctx context.Context, id, fromOwner, toOwner uuid.UUID) (domain.Event, error)
}

type requestRepo interface {
	Create(ctx context.Context, req domain.SwapRequest) (domain.SwapRequest, error)
	Resolve(ctx context.Context, id, receiverID uuid.UUID, status domain.SwapStatus) (domain.SwapRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SwapRequestDetails, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequestDetails, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// transitionRecorder counts swap outcomes by action and result.
type transitionRecorder interface {
	SwapTransition(action, result string)
}

// Metric label values.
const (
	actionPropose = "propose"
	actionAccept  = "accept"
	actionReject  = "reject"

	resultOK          = "ok"
	resultInvalidSlot = "invalid_slot"
	resultNotFound    = "not_found"
	resultConflict    = "conflict"
	resultInvalid     = "invalid"
	resultError       = "error"
)

// Service coordinates the swap protocol: proposing a trade of two swappable
// slots and letting the receiver accept or reject it. Every transition runs
// in a single transaction so both events and the request move together.
type Service struct {
	events   eventRepo
	requests requestRepo
	audit    auditLogger
	tx       txManager
	metrics  transitionRecorder
	log      *slog.Logger
}

// NewService creates a new Swap service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	requests requestRepo,
	audit auditLogger,
	tx txManager,
	metrics transitionRecorder,
) *Service {
	return &Service{
		events:   events,
		requests: requests,
		audit:    audit,
		tx:       tx,
		metrics:  metrics,
		log:      log.With("service", "swap"),
	}
}

func (s *Service) record(action string, err error) {
	s.metrics.SwapTransition(action, resultLabel(err))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, domain.ErrInvalidSlot):
		return resultInvalidSlot
	case errors.Is(err, domain.ErrNotFound):
		return resultNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return resultConflict
	case errors.Is(err, domain.ErrValidation):
		return resultInvalid
	default:
		return resultError
	}
}
