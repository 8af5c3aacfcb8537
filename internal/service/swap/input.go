package swap

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

// ProposeInput names the caller's slot to give away and the other user's
// slot to receive in exchange.
type ProposeInput struct {
	OfferedEventID   uuid.UUID
	RequestedEventID uuid.UUID
}

func (i ProposeInput) Validate() error {
	var errs []domain.FieldError

	if i.OfferedEventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "mySlotId", Message: "required"})
	}
	if i.RequestedEventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "theirSlotId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RespondInput is the receiver's decision on a pending request.
type RespondInput struct {
	RequestID uuid.UUID
	Accept    bool
}

func (i RespondInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("requestId", "required")
	}
	return nil
}
