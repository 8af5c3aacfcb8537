package domain

import (
	"time"

	"github.com/google/uuid"
)

// SwapRequest is a proposal to exchange ownership of two events.
// The offered event belongs to the requester, the requested event to the receiver.
type SwapRequest struct {
	ID               uuid.UUID
	RequesterID      uuid.UUID
	ReceiverID       uuid.UUID
	OfferedEventID   uuid.UUID
	RequestedEventID uuid.UUID
	Status           SwapStatus
	CreatedAt        time.Time
	RespondedAt      *time.Time
}

// InvolvesUser reports whether userID is either party of the request.
func (r *SwapRequest) InvolvesUser(userID uuid.UUID) bool {
	return r.RequesterID == userID || r.ReceiverID == userID
}

// SlotSummary is the display snapshot of an event referenced by a request.
// OwnerID is the event's current owner, which differs from the original
// party once a swap has been accepted.
type SlotSummary struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	OwnerID   uuid.UUID
}

// SwapRequestDetails is a SwapRequest enriched with party names and event
// snapshots.
type SwapRequestDetails struct {
	SwapRequest
	RequesterName string
	ReceiverName  string
	Offered       SlotSummary
	Requested     SlotSummary
}
