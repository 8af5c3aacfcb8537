package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
	"github.com/heartmarshall/slotswapper-backend/internal/service/swap"
)

//go:generate moq -out swap_service_mock_test.go -pkg rest . marketService swapService

type marketService interface {
	ListSwappableSlots(ctx context.Context) ([]domain.MarketSlot, error)
}

type swapService interface {
	ProposeSwap(ctx context.Context, input swap.ProposeInput) (domain.SwapRequest, error)
	RespondToSwap(ctx context.Context, input swap.RespondInput) (domain.SwapRequestDetails, error)
	ListMySwapRequests(ctx context.Context) ([]domain.SwapRequestDetails, error)
	GetSwapRequest(ctx context.Context, id uuid.UUID) (domain.SwapRequestDetails, error)
}

// SwapHandler serves the marketplace and the swap negotiation endpoints.
type SwapHandler struct {
	market marketService
	swaps  swapService
	log    *slog.Logger
}

// NewSwapHandler creates a SwapHandler.
func NewSwapHandler(market marketService, swaps swapService, logger *slog.Logger) *SwapHandler {
	return &SwapHandler{market: market, swaps: swaps, log: logger.With("handler", "swaps")}
}

type proposeRequest struct {
	MySlotID    uuid.UUID `json:"mySlotId"`
	TheirSlotID uuid.UUID `json:"theirSlotId"`
}

type respondRequest struct {
	Accepted *bool `json:"accepted"`
}

type marketSlotResponse struct {
	eventResponse
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

type swapRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	RequesterID      uuid.UUID  `json:"requesterId"`
	ReceiverID       uuid.UUID  `json:"receiverId"`
	OfferedEventID   uuid.UUID  `json:"offeredEventId"`
	RequestedEventID uuid.UUID  `json:"requestedEventId"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty"`
}

type slotSummaryResponse struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	OwnerID   uuid.UUID `json:"ownerId"`
}

type swapRequestDetailsResponse struct {
	swapRequestResponse
	RequesterName string              `json:"requesterName"`
	ReceiverName  string              `json:"receiverName"`
	OfferedSlot   slotSummaryResponse `json:"offeredSlot"`
	RequestedSlot slotSummaryResponse `json:"requestedSlot"`
}

type myRequestsResponse struct {
	Incoming []swapRequestDetailsResponse `json:"incoming"`
	Outgoing []swapRequestDetailsResponse `json:"outgoing"`
}

// SwappableSlots handles GET /api/swaps/swappable-slots.
func (h *SwapHandler) SwappableSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.market.ListSwappableSlots(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]marketSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, marketSlotResponse{
			eventResponse: toEventResponse(s.Event),
			OwnerName:     s.OwnerName,
			OwnerEmail:    s.OwnerEmail,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Propose handles POST /api/swaps/swap-request.
func (h *SwapHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	sr, err := h.swaps.ProposeSwap(r.Context(), swap.ProposeInput{
		OfferedEventID:   req.MySlotID,
		RequestedEventID: req.TheirSlotID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSwapRequestResponse(sr))
}

// Respond handles POST /api/swaps/swap-response/{id}.
func (h *SwapHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req respondRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if req.Accepted == nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("accepted", "required"))
		return
	}

	details, err := h.swaps.RespondToSwap(r.Context(), swap.RespondInput{
		RequestID: id,
		Accept:    *req.Accepted,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSwapRequestDetailsResponse(details))
}

// MyRequests handles GET /api/swaps/my-requests. Requests are split by the
// caller's role in them.
func (h *SwapHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeServiceError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	requests, err := h.swaps.ListMySwapRequests(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := myRequestsResponse{
		Incoming: []swapRequestDetailsResponse{},
		Outgoing: []swapRequestDetailsResponse{},
	}
	for _, d := range requests {
		if d.ReceiverID == userID {
			resp.Incoming = append(resp.Incoming, toSwapRequestDetailsResponse(d))
		} else {
			resp.Outgoing = append(resp.Outgoing, toSwapRequestDetailsResponse(d))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/swaps/requests/{id}.
func (h *SwapHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.swaps.GetSwapRequest(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSwapRequestDetailsResponse(details))
}

func toSwapRequestResponse(sr domain.SwapRequest) swapRequestResponse {
	return swapRequestResponse{
		ID:               sr.ID,
		RequesterID:      sr.RequesterID,
		ReceiverID:       sr.ReceiverID,
		OfferedEventID:   sr.OfferedEventID,
		RequestedEventID: sr.RequestedEventID,
		Status:           sr.Status.String(),
		CreatedAt:        sr.CreatedAt,
		RespondedAt:      sr.RespondedAt,
	}
}

func toSwapRequestDetailsResponse(d domain.SwapRequestDetails) swapRequestDetailsResponse {
	return swapRequestDetailsResponse{
		swapRequestResponse: toSwapRequestResponse(d.SwapRequest),
		RequesterName:       d.RequesterName,
		ReceiverName:        d.ReceiverName,
		OfferedSlot:         toSlotSummaryResponse(d.Offered),
		RequestedSlot:       toSlotSummaryResponse(d.Requested),
	}
}

func toSlotSummaryResponse(s domain.SlotSummary) slotSummaryResponse {
	return slotSummaryResponse{
		Title:     s.Title,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		OwnerID:   s.OwnerID,
	}
}
