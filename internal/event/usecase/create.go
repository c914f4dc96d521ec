package usecase

import (
	"context"

	"quick-event/internal/event"
	"quick-event/pkg/gcalendar"
)

// Create parses the query and inserts the resolved event through the
// Calendar API.
func (uc *implUseCase) Create(ctx context.Context, input event.ParseInput) (event.CreateOutput, error) {
	if uc.calendar == nil {
		return event.CreateOutput{}, event.ErrCalendarUnavailable
	}

	out, err := uc.Parse(ctx, input)
	if err != nil {
		return event.CreateOutput{}, err
	}
	ev := out.Event

	req := gcalendar.InsertEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     ev.Title,
		Description: ev.Note,
		Location:    ev.Location,
		Guests:      ev.Guests,
		Timezone:    uc.cfg.Timezone,
	}
	if ev.AllDay() {
		req.AllDayStart = ev.Date
		req.AllDayEnd = ev.Date.AddDate(0, 0, 1)
	} else {
		req.StartTime = *ev.Start
		req.EndTime = *ev.End
	}

	created, err := uc.calendar.InsertEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertEvent: %v", err)
		return event.CreateOutput{}, err
	}

	return event.CreateOutput{Parsed: out, Link: created.HtmlLink}, nil
}
