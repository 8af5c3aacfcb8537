package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/heartmarshall/slotswapper-backend/internal/domain"
)

const (
	productID = "-//slotswapper//calendar//EN"

	// propSwapStatus carries the raw event status next to the standard
	// STATUS property, which has no notion of "swappable".
	propSwapStatus = "X-SLOTSWAPPER-STATUS"
)

// ExportCalendar renders the authenticated user's events as an iCalendar
// feed.
func (s *Service) ExportCalendar(ctx context.Context) (*ical.Calendar, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar.ExportCalendar: %w", err)
	}

	stamp := time.Now().UTC()

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	for i := range events {
		cal.Children = append(cal.Children, toVEvent(&events[i], stamp))
	}

	return cal, nil
}

func toVEvent(e *domain.Event, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, e.ID.String()+"@slotswapper")
	ve.Props.SetText(ical.PropSummary, e.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime.UTC())

	if e.Status == domain.EventStatusSwapPending {
		ve.Props.SetText(ical.PropStatus, "TENTATIVE")
	} else {
		ve.Props.SetText(ical.PropStatus, "CONFIRMED")
	}
	ve.Props.SetText(propSwapStatus, e.Status.String())

	return ve
}
