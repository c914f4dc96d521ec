package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reAllDigits    = regexp.MustCompile(`^\d+$`)
	reDurationUnit = regexp.MustCompile(`(\d+)\s*(hours|hour|hrs|hr|h|minutes|minute|mins|min|m)`)
)

// ParseDuration resolves a duration phrase to minutes. An empty phrase or
// one with no recognizable <number><unit> occurrences yields defaultMinutes.
// A phrase of bare digits is read directly as minutes (minimum 1). Otherwise
// all unit occurrences are summed, hour units counting sixty-fold, so
// "1h 30m" and "90" both come out to 90.
func ParseDuration(phrase string, defaultMinutes int) int {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return defaultMinutes
	}

	if reAllDigits.MatchString(s) {
		n, _ := strconv.Atoi(s)
		if n < 1 {
			n = 1
		}
		return n
	}

	total := 0
	for _, m := range reDurationUnit.FindAllStringSubmatch(s, -1) {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "h") {
			total += n * 60
		} else {
			total += n
		}
	}
	if total <= 0 {
		return defaultMinutes
	}
	return total
}
