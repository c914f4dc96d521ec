package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts quick-add date, time and duration phrases into absolute
// values. All Parse* methods are pure: they take the reference moment as an
// argument and never read the clock themselves.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "America/Denver"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the current moment in the parser's timezone. Callers read it
// once per query and pass it through, so a single parse never sees two
// different "now" values.
func (p *Parser) Now() time.Time {
	return time.Now().In(p.location)
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// WeekdayPattern and MonthPattern are the regexp alternations for weekday
// and month names, shared with the title date inference.
const (
	WeekdayPattern = `mon|monday|tue|tues|tuesday|wed|wednesday|thu|thurs|thursday|fri|friday|sat|saturday|sun|sunday`
	MonthPattern   = `jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|sept|september|oct|october|nov|november|dec|december`
)

var (
	reOrdinal     = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)\b`)
	reRelativeDay = regexp.MustCompile(`^(today|tomorrow|tmr|tmrw)$`)
	reWeekday     = regexp.MustCompile(`^(this|next)?\s*(` + WeekdayPattern + `)$`)
	reNumericDate = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})$`)
	reMonthDay    = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})$`)
	reBareDay     = regexp.MustCompile(`^(\d{1,2})$`)
)

// dateRule binds one date pattern to its resolver. Rules are evaluated in
// order, first accepted match wins, so the priority between overlapping
// forms stays explicit and each rule is testable on its own.
type dateRule struct {
	name    string
	re      *regexp.Regexp
	resolve func(p *Parser, today time.Time, m []string) (time.Time, bool)
}

var dateRules = []dateRule{
	{"relative", reRelativeDay, func(p *Parser, today time.Time, m []string) (time.Time, bool) {
		if m[1] == "today" {
			return today, true
		}
		return today.AddDate(0, 0, 1), true
	}},
	{"weekday", reWeekday, func(p *Parser, today time.Time, m []string) (time.Time, bool) {
		return p.nextWeekday(today, weekdays[m[2]], m[1]), true
	}},
	{"numeric", reNumericDate, func(p *Parser, today time.Time, m []string) (time.Time, bool) {
		mm, _ := strconv.Atoi(m[1])
		dd, _ := strconv.Atoi(m[2])
		return p.monthDayThisOrNextYear(today, mm, dd)
	}},
	{"month-day", reMonthDay, func(p *Parser, today time.Time, m []string) (time.Time, bool) {
		mon, known := months[m[1]]
		if !known {
			return time.Time{}, false
		}
		dd, _ := strconv.Atoi(m[2])
		return p.monthDayThisOrNextYear(today, int(mon), dd)
	}},
	{"bare-day", reBareDay, func(p *Parser, today time.Time, m []string) (time.Time, bool) {
		dd, _ := strconv.Atoi(m[1])
		return p.dayOfMonthThisOrNextMonth(today, dd)
	}},
}

// StripOrdinal removes ordinal suffixes from day numbers: "22nd" -> "22".
func StripOrdinal(s string) string {
	return reOrdinal.ReplaceAllString(s, "${1}")
}

// ParseDate resolves a date phrase against now's local calendar date.
// Recognized forms, first match wins:
//
//	today | tomorrow | tmr | tmrw
//	[this|next] <weekday>
//	M[./-]D         (current year, rolls to next year when already past)
//	<month name> D  (same rollover)
//	D               (current month, rolls to next month when already past)
//
// ok is false when nothing matches; the caller substitutes today.
func (p *Parser) ParseDate(phrase string, now time.Time) (time.Time, bool) {
	s := StripOrdinal(strings.ToLower(strings.TrimSpace(phrase)))
	if s == "" {
		return time.Time{}, false
	}
	today := p.Midnight(now)

	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if d, ok := rule.resolve(p, today, m); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

// nextWeekday computes the occurrence of target selected by mode.
// "this" takes the closest occurrence on or after today, "next" always skips
// at least one full week, and no modifier means the next future occurrence
// (never today).
func (p *Parser) nextWeekday(today time.Time, target time.Weekday, mode string) time.Time {
	delta := (int(target) - int(today.Weekday()) + 7) % 7

	switch mode {
	case "this":
		return today.AddDate(0, 0, delta)
	case "next":
		return today.AddDate(0, 0, delta+7)
	}
	if delta == 0 {
		delta = 7
	}
	return today.AddDate(0, 0, delta)
}

// monthDayThisOrNextYear builds month/day in today's year, rolling to next
// year when the date already passed. Impossible calendar dates (2/30) are a
// non-match, not a silent default.
func (p *Parser) monthDayThisOrNextYear(today time.Time, month, day int) (time.Time, bool) {
	year := today.Year()
	candidate, ok := p.validDate(year, month, day)
	if !ok {
		return time.Time{}, false
	}
	if candidate.Before(today) {
		candidate, ok = p.validDate(year+1, month, day)
		if !ok {
			return time.Time{}, false
		}
	}
	return candidate, true
}

// dayOfMonthThisOrNextMonth builds the day in today's month, rolling to the
// next month (and wrapping the year at December) when already past.
func (p *Parser) dayOfMonthThisOrNextMonth(today time.Time, day int) (time.Time, bool) {
	year, month := today.Year(), int(today.Month())
	candidate, ok := p.validDate(year, month, day)
	if !ok {
		return time.Time{}, false
	}
	if candidate.Before(today) {
		month++
		if month == 13 {
			month = 1
			year++
		}
		candidate, ok = p.validDate(year, month, day)
		if !ok {
			return time.Time{}, false
		}
	}
	return candidate, true
}

// validDate constructs midnight of y-m-d and rejects inputs time.Date would
// silently normalize (e.g. Feb 30 -> Mar 2).
func (p *Parser) validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// Midnight returns the start of t's day in the parser's timezone.
func (p *Parser) Midnight(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
