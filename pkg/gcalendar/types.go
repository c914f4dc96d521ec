package gcalendar

import "time"

// InsertEventRequest is the input for inserting a Google Calendar event.
// For all-day events leave StartTime/EndTime zero and set AllDayStart /
// AllDayEnd (end exclusive, one day past the event date).
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Guests      []string // attendee email addresses
	StartTime   time.Time
	EndTime     time.Time
	AllDayStart time.Time
	AllDayEnd   time.Time
	Timezone    string // e.g. "America/Denver"
}

// AllDay reports whether the request describes an all-day event.
func (r InsertEventRequest) AllDay() bool {
	return r.StartTime.IsZero()
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// URLParams is the input for building a pre-filled event page URL. When
// Start/End are nil the all-day fields are used instead.
type URLParams struct {
	BaseURL  string
	Title    string
	Timezone string
	Start    *time.Time
	End      *time.Time
	AllDayStart time.Time
	AllDayEnd   time.Time
	Details  string
	Location string
	Guests   []string
	Src      string
}
