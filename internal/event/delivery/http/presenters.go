package http

import (
	"time"

	"quick-event/internal/event"
)

// --- Request DTOs ---

type parseReq struct {
	Query   string `json:"query"   binding:"required,min=1,max=500"`
	Profile string `json:"profile" binding:"omitempty,oneof=personal work other"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() event.ParseInput {
	return event.ParseInput{
		Query:   r.Query,
		Profile: event.Profile(r.Profile),
	}
}

// ---

type previewReq struct {
	Query   string `form:"q"       binding:"required"`
	Profile string `form:"profile" binding:"omitempty,oneof=personal work other"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() event.ParseInput {
	return event.ParseInput{
		Query:   r.Query,
		Profile: event.Profile(r.Profile),
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	AllDay       bool     `json:"all_day"`
	Start        string   `json:"start,omitempty"`
	End          string   `json:"end,omitempty"`
	DurationMin  int      `json:"duration_min,omitempty"`
	Location     string   `json:"location,omitempty"`
	Note         string   `json:"note,omitempty"`
	Guests       []string `json:"guests,omitempty"`
	GuestDisplay []string `json:"guest_display,omitempty"`
	Unresolved   []string `json:"unresolved,omitempty"`
}

func newEventResp(ev event.Event) eventResp {
	resp := eventResp{
		Title:        ev.Title,
		Date:         ev.Date.Format("2006-01-02"),
		AllDay:       ev.AllDay(),
		DurationMin:  ev.DurationMin,
		Location:     ev.Location,
		Note:         ev.Note,
		Guests:       ev.Guests,
		GuestDisplay: ev.GuestDisplay,
		Unresolved:   ev.Unresolved,
	}
	if !ev.AllDay() {
		resp.Start = ev.Start.Format(time.RFC3339)
		resp.End = ev.End.Format(time.RFC3339)
	}
	return resp
}

type parseResp struct {
	Event       eventResp `json:"event"`
	Profile     string    `json:"profile"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
}

func (h *handler) newParseResp(out event.ParseOutput) parseResp {
	return parseResp{
		Event:       newEventResp(out.Event),
		Profile:     string(out.Profile),
		URL:         out.URL,
		Summary:     out.Summary,
		Description: out.Description,
	}
}

type createResp struct {
	Event   eventResp `json:"event"`
	Profile string    `json:"profile"`
	Link    string    `json:"link"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{
		Event:   newEventResp(out.Parsed.Event),
		Profile: string(out.Parsed.Profile),
		Link:    out.Link,
	}
}
