package gcalendar_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"quick-event/pkg/gcalendar"
)

func TestBuildEventURL(t *testing.T) {
	loc := time.UTC
	start := time.Date(2025, 3, 5, 13, 0, 0, 0, loc)
	end := time.Date(2025, 3, 5, 15, 0, 0, 0, loc)

	queryOf := func(t *testing.T, raw string) url.Values {
		t.Helper()
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("built URL does not parse: %v", err)
		}
		return u.Query()
	}

	t.Run("Timed Event", func(t *testing.T) {
		raw := gcalendar.BuildEventURL(gcalendar.URLParams{
			BaseURL:  "https://calendar.google.com/calendar/u/0/r/eventedit",
			Title:    "Family party",
			Timezone: "America/Denver",
			Start:    &start,
			End:      &end,
			Details:  "bring cake",
			Location: "Backyard",
			Guests:   []string{"mom@x.com", "dad@x.com"},
		})

		q := queryOf(t, raw)
		if q.Get("text") != "Family party" {
			t.Errorf("text = %q", q.Get("text"))
		}
		if q.Get("ctz") != "America/Denver" {
			t.Errorf("ctz = %q", q.Get("ctz"))
		}
		if q.Get("dates") != "20250305T130000/20250305T150000" {
			t.Errorf("dates = %q", q.Get("dates"))
		}
		if q.Get("add") != "mom@x.com,dad@x.com" {
			t.Errorf("add = %q", q.Get("add"))
		}
		if q.Get("location") != "Backyard" {
			t.Errorf("location = %q", q.Get("location"))
		}
		if q.Has("action") {
			t.Errorf("non-render base URL must not get action=TEMPLATE")
		}
		if !strings.Contains(raw, "eventedit?") {
			t.Errorf("expected ? joiner on bare base URL: %s", raw)
		}
	})

	t.Run("All Day Event", func(t *testing.T) {
		raw := gcalendar.BuildEventURL(gcalendar.URLParams{
			BaseURL:     "https://calendar.google.com/calendar/u/0/r/eventedit",
			Title:       "Trip",
			Timezone:    "UTC",
			AllDayStart: time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
			AllDayEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, loc),
		})

		q := queryOf(t, raw)
		if q.Get("dates") != "20250305/20250306" {
			t.Errorf("all-day dates = %q", q.Get("dates"))
		}
		if q.Has("details") || q.Has("location") || q.Has("add") || q.Has("src") {
			t.Errorf("empty optional params must be omitted: %s", raw)
		}
	})

	t.Run("Render Base Gets Template Mode", func(t *testing.T) {
		raw := gcalendar.BuildEventURL(gcalendar.URLParams{
			BaseURL:     "https://calendar.google.com/calendar/render",
			Title:       "X",
			Timezone:    "UTC",
			AllDayStart: time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
			AllDayEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, loc),
		})
		if q := queryOf(t, raw); q.Get("action") != "TEMPLATE" {
			t.Errorf("render base URL must get action=TEMPLATE: %s", raw)
		}
	})

	t.Run("Existing Query Uses Ampersand", func(t *testing.T) {
		raw := gcalendar.BuildEventURL(gcalendar.URLParams{
			BaseURL:     "https://calendar.google.com/calendar/r/eventedit?pli=1",
			Title:       "X",
			Timezone:    "UTC",
			AllDayStart: time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
			AllDayEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, loc),
		})
		if !strings.Contains(raw, "?pli=1&") {
			t.Errorf("expected & joiner when base already has a query: %s", raw)
		}
	})

	t.Run("Values Are Percent Encoded", func(t *testing.T) {
		raw := gcalendar.BuildEventURL(gcalendar.URLParams{
			BaseURL:     "https://calendar.google.com/calendar/u/0/r/eventedit",
			Title:       "Dinner & drinks",
			Timezone:    "America/Denver",
			AllDayStart: time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
			AllDayEnd:   time.Date(2025, 3, 6, 0, 0, 0, 0, loc),
		})
		if strings.Contains(raw, "Dinner & drinks") {
			t.Errorf("title must be encoded: %s", raw)
		}
		if q := queryOf(t, raw); q.Get("text") != "Dinner & drinks" {
			t.Errorf("round-trip text = %q", q.Get("text"))
		}
	})
}
