package usecase

import (
	"fmt"
	"strings"
	"time"

	"quick-event/internal/event"
)

// Character budgets for the single-line UI surfaces.
const (
	guestListBudget   = 40
	unresolvedBudget  = 40
	descriptionBudget = 250
)

// Summary builds the compact one-line display for a resolved event:
//
//	Personal | Family party | 🗓️: Mar 5 2025 | 🕓: 1p-3p | ⏱: 2h | 👥 2 Mom, Dad
func Summary(profile event.Profile, ev event.Event) string {
	timeStr := "all-day"
	durStr := ""
	if !ev.AllDay() {
		timeStr = shortTime(*ev.Start) + "-" + shortTime(*ev.End)
		durStr = shortDuration(ev.DurationMin)
	}

	pieces := []string{
		profileDisplay(profile),
		ev.Title,
		"🗓️: " + shortDate(ev.Date),
		"🕓: " + timeStr,
	}
	if durStr != "" {
		pieces = append(pieces, "⏱: "+durStr)
	}

	guestList := strings.Join(ev.GuestDisplay, ", ")
	if len([]rune(guestList)) > guestListBudget {
		guestList = string([]rune(guestList)[:guestListBudget-3]) + "..."
	}
	if len(ev.Guests) > 0 || guestList != "" {
		pieces = append(pieces, strings.TrimSpace(fmt.Sprintf("👥 %d %s", len(ev.Guests), guestList)))
	}

	return strings.Join(pieces, " | ")
}

// Description builds the secondary display line: location and any guest
// tokens that could not be resolved, so the user visibly sees what was
// skipped.
func Description(ev event.Event) string {
	var bits []string
	if ev.Location != "" {
		bits = append(bits, "📍 "+ev.Location)
	}
	if len(ev.Unresolved) > 0 {
		bits = append(bits, "⚠ Unmatched: "+clip(strings.Join(ev.Unresolved, ", "), unresolvedBudget))
	}
	if len(bits) == 0 {
		return "Open prefilled event page"
	}
	return clip(strings.Join(bits, " | "), descriptionBudget)
}

func profileDisplay(p event.Profile) string {
	switch p {
	case event.ProfileWork:
		return "Work"
	case event.ProfileOther:
		return "Other"
	default:
		return "Personal"
	}
}

// shortDate formats like "Mar 5 2025".
func shortDate(t time.Time) string {
	return t.Format("Jan 2 2006")
}

// shortTime formats like "4p" or "4:30p".
func shortTime(t time.Time) string {
	ap := "a"
	if t.Hour() >= 12 {
		ap = "p"
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d%s", h, ap)
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), ap)
}

// shortDuration formats like "2h", "1h30m" or "45m".
func shortDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m == 0:
		return fmt.Sprintf("%dh", h)
	case h > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
