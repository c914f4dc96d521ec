package usecase_test

import (
	"context"
	"time"

	"quick-event/internal/event"
	"quick-event/internal/event/usecase"
	"quick-event/pkg/datemath"
	"quick-event/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar client for testing
type mockCalendar struct {
	insertFunc func(req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
}

func (m *mockCalendar) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
	if m.insertFunc == nil {
		return &gcalendar.Event{ID: "mock-1", HtmlLink: "https://calendar.google.com/mock-1"}, nil
	}
	return m.insertFunc(req)
}

// newTestUseCase builds a UseCase pinned to a fixed clock in UTC.
func newTestUseCase(now time.Time, aliases string, cal usecase.CalendarClient) event.UseCase {
	parser, _ := datemath.NewParser("UTC")
	return usecase.New(&mockLogger{}, parser, cal, usecase.Config{
		Timezone:               "UTC",
		DefaultDurationMinutes: 60,
		Aliases:                event.ParseAliases(aliases),
		Targets: map[event.Profile]usecase.ProfileTarget{
			event.ProfilePersonal: {BaseURL: "https://calendar.google.com/calendar/u/0/r/eventedit"},
			event.ProfileWork: {
				BaseURL: "https://calendar.google.com/calendar/render",
				Src:     "work@group.calendar.google.com",
			},
		},
		Now: func() time.Time { return now },
	})
}
