package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quick-event/internal/event"
	"quick-event/pkg/gcalendar"
)

func TestCreateWithoutCalendar(t *testing.T) {
	uc := newTestUseCase(testNow, "", nil)
	_, err := uc.Create(context.Background(), event.ParseInput{Query: "Dinner at 7"})
	if !errors.Is(err, event.ErrCalendarUnavailable) {
		t.Errorf("err = %v, want ErrCalendarUnavailable", err)
	}
}

func TestCreateTimedEvent(t *testing.T) {
	var captured gcalendar.InsertEventRequest
	cal := &mockCalendar{insertFunc: func(req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
		captured = req
		return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/ev-1"}, nil
	}}
	uc := newTestUseCase(testNow, "mom=mom@example.com", cal)

	out, err := uc.Create(context.Background(), event.ParseInput{
		Query: "Dinner tomorrow at 7 with Mom in Backyard",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if captured.Summary != "Dinner" {
		t.Errorf("Summary = %q, want %q", captured.Summary, "Dinner")
	}
	wantStart := time.Date(2025, time.March, 5, 19, 0, 0, 0, time.UTC)
	if !captured.StartTime.Equal(wantStart) {
		t.Errorf("StartTime = %v, want %v", captured.StartTime, wantStart)
	}
	if !captured.EndTime.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("EndTime = %v, want %v", captured.EndTime, wantStart.Add(time.Hour))
	}
	if captured.Location != "Backyard" {
		t.Errorf("Location = %q, want %q", captured.Location, "Backyard")
	}
	if len(captured.Guests) != 1 || captured.Guests[0] != "mom@example.com" {
		t.Errorf("Guests = %v, want [mom@example.com]", captured.Guests)
	}
	if captured.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", captured.Timezone)
	}
	if out.Link != "https://calendar.google.com/ev-1" {
		t.Errorf("Link = %q, want the created event link", out.Link)
	}
	if out.Parsed.Event.Title != "Dinner" {
		t.Errorf("Parsed.Event.Title = %q, want %q", out.Parsed.Event.Title, "Dinner")
	}
}

func TestCreateAllDayEvent(t *testing.T) {
	var captured gcalendar.InsertEventRequest
	cal := &mockCalendar{insertFunc: func(req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
		captured = req
		return &gcalendar.Event{ID: "ev-2", HtmlLink: "https://calendar.google.com/ev-2"}, nil
	}}
	uc := newTestUseCase(testNow, "", cal)

	if _, err := uc.Create(context.Background(), event.ParseInput{Query: "Ski trip tomorrow"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !captured.StartTime.IsZero() {
		t.Errorf("StartTime = %v, want zero for an all-day event", captured.StartTime)
	}
	wantStart := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !captured.AllDayStart.Equal(wantStart) {
		t.Errorf("AllDayStart = %v, want %v", captured.AllDayStart, wantStart)
	}
	if !captured.AllDayEnd.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("AllDayEnd = %v, want %v", captured.AllDayEnd, wantStart.AddDate(0, 0, 1))
	}
}

func TestCreateInsertError(t *testing.T) {
	wantErr := errors.New("calendar down")
	cal := &mockCalendar{insertFunc: func(gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
		return nil, wantErr
	}}
	uc := newTestUseCase(testNow, "", cal)

	if _, err := uc.Create(context.Background(), event.ParseInput{Query: "Dinner at 7"}); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
