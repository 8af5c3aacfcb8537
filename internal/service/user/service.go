package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

//go:generate moq -out repo_mock_test.go -pkg user . userRepo eventRepo requestRepo

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type eventRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error)
}

type requestRepo interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequestDetails, error)
}

// Service implements the profile read model.
type Service struct {
	log      *slog.Logger
	users    userRepo
	events   eventRepo
	requests requestRepo
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	events eventRepo,
	requests requestRepo,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		events:   events,
		requests: requests,
	}
}
