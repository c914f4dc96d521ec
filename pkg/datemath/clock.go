package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day with no date or timezone attached.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock as minutes since midnight, for ordering checks.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

var (
	reHourMinute = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reBareDigits = regexp.MustCompile(`^(\d{1,4})$`)
	reMeridiem   = regexp.MustCompile(`(?i)\b(am|pm)\b`)
	reShortAP    = regexp.MustCompile(`(?i)\d\s*(am|pm|a|p)\b`)
	reRangeSplit = regexp.MustCompile(`(?is)^(.+?)\s*(?:\bto\b|-)\s*(.+)$`)
)

// HasMeridiem reports whether the phrase carries an explicit am/pm marker,
// including the short "4p" / "9a" forms.
func HasMeridiem(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	return reMeridiem.MatchString(s) || reShortAP.MatchString(s)
}

// ParseTime resolves a time phrase to a Clock. Accepted numeric forms are
// H:MM and 1-4 bare digits (3-4 digits read as HMM/HHMM). With an explicit
// am/pm marker standard 12-hour conversion applies. Without one, hours >= 13
// pass through as 24-hour values and ambiguous 1-12 hours use the quick-add
// heuristic: 12 stays noon, 1-8 are assumed PM, 9-11 assumed AM. The
// asymmetry is deliberate product behavior and must not be "fixed".
func ParseTime(phrase string) (Clock, bool) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(phrase)), " ", "")
	s = strings.ReplaceAll(s, "a.m.", "am")
	s = strings.ReplaceAll(s, "p.m.", "pm")
	if s == "" {
		return Clock{}, false
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "am"):
		meridiem, s = "am", s[:len(s)-2]
	case strings.HasSuffix(s, "pm"):
		meridiem, s = "pm", s[:len(s)-2]
	case strings.HasSuffix(s, "a"):
		meridiem, s = "am", s[:len(s)-1]
	case strings.HasSuffix(s, "p"):
		meridiem, s = "pm", s[:len(s)-1]
	}

	var hour, minute int
	if m := reHourMinute.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
	} else if m := reBareDigits.FindStringSubmatch(s); m != nil {
		digits := m[1]
		if len(digits) >= 3 {
			hour, _ = strconv.Atoi(digits[:len(digits)-2])
			minute, _ = strconv.Atoi(digits[len(digits)-2:])
		} else {
			hour, _ = strconv.Atoi(digits)
		}
	} else {
		return Clock{}, false
	}

	if minute < 0 || minute > 59 || hour < 0 || hour > 24 {
		return Clock{}, false
	}

	// Already unambiguous 24-hour.
	if meridiem == "" && hour >= 13 {
		return Clock{Hour: hour, Minute: minute}, true
	}

	if meridiem != "" {
		if hour == 12 {
			hour = 0
		}
		if meridiem == "pm" {
			hour += 12
		}
		return Clock{Hour: hour, Minute: minute}, true
	}

	// No marker: 12 stays noon, 1-8 => PM, 9-11 => AM.
	if hour >= 1 && hour <= 8 {
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// ParseTimeRange resolves "<left> to <right>" or "<left>-<right>" (en/em
// dashes included). Both sides resolve independently via ParseTime. When
// neither side carried an explicit marker and the right side lands at or
// before the left while still in the morning, the right side is pushed to PM
// so "3 to 10" means 3pm-10pm. Failure of either side fails the range.
func ParseTimeRange(phrase string) (Clock, Clock, bool) {
	s := strings.TrimSpace(phrase)
	s = strings.ReplaceAll(s, "—", "-") // em dash
	s = strings.ReplaceAll(s, "–", "-") // en dash

	m := reRangeSplit.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, Clock{}, false
	}
	left := strings.TrimSpace(m[1])
	right := strings.TrimSpace(m[2])

	start, okL := ParseTime(left)
	end, okR := ParseTime(right)
	if !okL || !okR {
		return Clock{}, Clock{}, false
	}

	if !HasMeridiem(left) && !HasMeridiem(right) {
		if end.Minutes() <= start.Minutes() && end.Hour < 12 && end.Hour+12 < 24 {
			end.Hour += 12
		}
	}

	return start, end, true
}
