package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/internal/service/calendar"
)

//go:generate moq -out calendar_service_mock_test.go -pkg rest . calendarService

type calendarService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, input calendar.CreateEventInput) (domain.Event, error)
	SetEventStatus(ctx context.Context, input calendar.SetStatusInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, input calendar.DeleteEventInput) error
	ExportCalendar(ctx context.Context) (*ical.Calendar, error)
}

// EventHandler serves the caller's own calendar.
type EventHandler struct {
	svc calendarService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc calendarService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "events")}
}

type createEventRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type eventResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), calendar.CreateEventInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.EventStatus(req.Status),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// SetStatus handles PATCH /api/events/{id}/status.
func (h *EventHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req setStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	event, err := h.svc.SetEventStatus(r.Context(), calendar.SetStatusInput{
		EventID: id,
		Status:  domain.EventStatus(req.Status),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), calendar.DeleteEventInput{EventID: id}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/events.ics.
func (h *EventHandler) Export(w http.ResponseWriter, r *http.Request) {
	cal, err := h.svc.ExportCalendar(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="slotswapper.ics"`)
	w.WriteHeader(http.StatusOK)
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		h.log.ErrorContext(r.Context(), "encode calendar", slog.String("error", err.Error()))
	}
}

// pathUUID parses a chi URL parameter as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Code:   codeValidation,
			Fields: []fieldErrorEntry{{Field: name, Message: "must be a valid UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Status:    e.Status.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
