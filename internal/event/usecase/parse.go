package usecase

import (
	"context"
	"strings"
	"time"

	"quick-event/internal/event"
	"quick-event/pkg/datemath"
	"quick-event/pkg/gcalendar"
)

// Parse resolves a quick-add query into a structured event plus the
// pre-filled calendar URL and display strings.
func (uc *implUseCase) Parse(ctx context.Context, input event.ParseInput) (event.ParseOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return event.ParseOutput{}, event.ErrEmptyQuery
	}

	profile := input.Profile
	if profile == "" {
		profile = event.ProfilePersonal
	}
	target, ok := uc.cfg.Targets[profile]
	if !ok {
		return event.ParseOutput{}, event.ErrUnknownProfile
	}

	cacheKey := string(profile) + "\x00" + query
	if out, hit := uc.cache.Get(cacheKey); hit {
		uc.l.Debugf(ctx, "parse cache hit for %q", query)
		return out, nil
	}

	// The clock is read exactly once; every date/time comparison in this
	// invocation sees the same "now".
	now := uc.cfg.Now()

	ev := uc.resolve(query, now)

	out := event.ParseOutput{
		Event:       ev,
		Profile:     profile,
		URL:         uc.eventURL(ev, target),
		Summary:     Summary(profile, ev),
		Description: Description(ev),
	}
	uc.cache.Add(cacheKey, out)
	return out, nil
}

// resolve runs the parsing pipeline: sections, title date inference, then
// the independent date/time/duration/guest resolvers, then cross-field
// policy. It cannot fail; every resolver degrades to its fallback.
func (uc *implUseCase) resolve(query string, now time.Time) event.Event {
	sections := ExtractSections(query)

	title := strings.TrimSpace(sections[event.SectionTitle])
	if title == "" {
		title = "(No title)"
	}

	// Allow "tomorrow" / "next fri" / "12.15" embedded in the title when no
	// explicit "on" section was given.
	if strings.TrimSpace(sections[event.SectionOn]) == "" {
		if rest, phrase := InferDateFromTitle(title); phrase != "" {
			sections[event.SectionOn] = phrase
			if rest != "" {
				title = rest
			}
		}
	}

	date, ok := uc.parser.ParseDate(sections[event.SectionOn], now)
	if !ok {
		date = uc.parser.Midnight(now)
	}

	guests, display, unresolved := ResolveGuests(sections[event.SectionWith], uc.cfg.Aliases)

	ev := event.Event{
		Title:        title,
		Date:         date,
		Location:     strings.TrimSpace(sections[event.SectionIn]),
		Note:         strings.TrimSpace(sections[event.SectionNote]),
		Guests:       guests,
		GuestDisplay: display,
		Unresolved:   unresolved,
	}

	// Time precedence: a "from" range wins; failing that "at" is tried as a
	// range first, then as a single time.
	var start, end *datemath.Clock
	if fromText := strings.TrimSpace(sections[event.SectionFrom]); fromText != "" {
		if s, e, rangeOK := datemath.ParseTimeRange(fromText); rangeOK {
			start, end = &s, &e
		}
	}
	if start == nil {
		if atText := strings.TrimSpace(sections[event.SectionAt]); atText != "" {
			if s, e, rangeOK := datemath.ParseTimeRange(atText); rangeOK {
				start, end = &s, &e
			} else if s, timeOK := datemath.ParseTime(atText); timeOK {
				start = &s
			}
		}
	}

	if start == nil {
		// No time of day: all-day event spanning the resolved date.
		return ev
	}

	duration := datemath.ParseDuration(sections[event.SectionFor], uc.cfg.DefaultDurationMinutes)

	loc := uc.parser.Location()
	startLocal := time.Date(date.Year(), date.Month(), date.Day(), start.Hour, start.Minute, 0, 0, loc)

	// Typed "today" with a time that already passed: bump to tomorrow.
	if date.Equal(uc.parser.Midnight(now)) && startLocal.Before(now) {
		startLocal = startLocal.Add(24 * time.Hour)
		ev.Date = uc.parser.Midnight(startLocal)
	}

	var endLocal time.Time
	if end != nil {
		d := ev.Date
		endLocal = time.Date(d.Year(), d.Month(), d.Day(), end.Hour, end.Minute, 0, 0, loc)
		if !endLocal.After(startLocal) {
			// Overnight range: the end lands on the next day.
			endLocal = endLocal.Add(24 * time.Hour)
		}
		duration = int(endLocal.Sub(startLocal).Minutes())
	} else {
		endLocal = startLocal.Add(time.Duration(duration) * time.Minute)
	}

	ev.Start, ev.End, ev.DurationMin = &startLocal, &endLocal, duration
	return ev
}

// eventURL serializes the event against the profile's calendar target.
func (uc *implUseCase) eventURL(ev event.Event, target ProfileTarget) string {
	params := gcalendar.URLParams{
		BaseURL:  target.BaseURL,
		Title:    ev.Title,
		Timezone: uc.cfg.Timezone,
		Details:  ev.Note,
		Location: ev.Location,
		Guests:   ev.Guests,
		Src:      target.Src,
	}
	if ev.AllDay() {
		params.AllDayStart = ev.Date
		params.AllDayEnd = ev.Date.AddDate(0, 0, 1)
	} else {
		params.Start = ev.Start
		params.End = ev.End
	}
	return gcalendar.BuildEventURL(params)
}
