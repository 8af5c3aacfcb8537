package calendar

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

const (
	MaxTitleLength = 200
	MaxSlotLength  = 7 * 24 * time.Hour
)

// CreateEventInput holds parameters for creating a calendar slot.
// Status is optional and defaults to BUSY.
type CreateEventInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    domain.EventStatus
}

func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "required"})
	}
	if !i.StartTime.IsZero() && !i.EndTime.IsZero() {
		slot := domain.Event{StartTime: i.StartTime, EndTime: i.EndTime}
		switch d := slot.Duration(); {
		case d <= 0:
			errs = append(errs, domain.FieldError{Field: "endTime", Message: "must be after startTime"})
		case d > MaxSlotLength:
			errs = append(errs, domain.FieldError{Field: "endTime", Message: "slot longer than 7 days"})
		}
	}

	if i.Status != "" {
		if _, ok := domain.OwnerTrigger(i.Status); !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must be BUSY or SWAPPABLE"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetStatusInput holds parameters for an owner-initiated status change.
type SetStatusInput struct {
	EventID uuid.UUID
	Status  domain.EventStatus
}

func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "eventId", Message: "required"})
	}
	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if _, ok := domain.OwnerTrigger(i.Status); !ok {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be BUSY or SWAPPABLE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteEventInput holds parameters for deleting a calendar slot.
type DeleteEventInput struct {
	EventID uuid.UUID
}

func (i DeleteEventInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("eventId", "required")
	}
	return nil
}
