package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/slotswapper-backend/internal/service/user"
)

//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService

type profileService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
}

// ProfileHandler serves the caller's own account summary.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	User            userResponse   `json:"user"`
	Events          map[string]int `json:"events"`
	PendingIncoming int            `json:"pendingIncoming"`
	PendingOutgoing int            `json:"pendingOutgoing"`
}

// Me handles GET /api/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	events := make(map[string]int, len(p.EventsByStatus))
	for status, n := range p.EventsByStatus {
		events[status.String()] = n
	}
	writeJSON(w, http.StatusOK, profileResponse{
		User:            toUserResponse(p.User),
		Events:          events,
		PendingIncoming: p.PendingIncoming,
		PendingOutgoing: p.PendingOutgoing,
	})
}
