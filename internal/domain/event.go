package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is one calendar slot owned by a single user.
type Event struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    EventStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID owns the event.
func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

// Duration returns the length of the slot.
func (e *Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// MarketSlot is a swappable event offered by another user, as shown in the
// marketplace.
type MarketSlot struct {
	Event
	OwnerName  string
	OwnerEmail string
}
