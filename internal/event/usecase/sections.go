package usecase

import (
	"regexp"
	"strings"

	"quick-event/internal/event"
	"quick-event/pkg/datemath"
)

// reSectionKeyword matches the fixed keyword set as whole words; keyword
// order of appearance in the query determines section boundaries.
var reSectionKeyword = regexp.MustCompile(`(?i)\b(on|at|from|with|note|desc|details|for|in|where)\b`)

// ExtractSections splits a raw query into a title plus keyword-delimited
// sections. A leading quoted title is taken literally (keywords inside it
// are not scanned) and the remainder is extracted recursively, with the
// quoted text always winning as the title. Synonyms are normalized after
// boundary splitting: desc/details -> note, where -> in. With no keywords
// the whole query is the title.
func ExtractSections(query string) event.Sections {
	q := strings.TrimSpace(query)

	if len(q) > 0 && (q[0] == '"' || q[0] == '\'') {
		if end := strings.IndexByte(q[1:], q[0]); end != -1 {
			title := strings.TrimSpace(q[1 : 1+end])
			rest := strings.TrimSpace(q[2+end:])
			sections := event.Sections{event.SectionTitle: title}
			if rest != "" {
				sections = ExtractSections(rest)
				sections[event.SectionTitle] = title
			}
			return sections
		}
	}

	matches := reSectionKeyword.FindAllStringSubmatchIndex(q, -1)
	if len(matches) == 0 {
		return event.Sections{event.SectionTitle: q}
	}

	sections := event.Sections{
		event.SectionTitle: strings.TrimSpace(q[:matches[0][0]]),
	}

	for i, m := range matches {
		key := strings.ToLower(q[m[2]:m[3]])
		end := len(q)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		val := strings.TrimSpace(q[m[1]:end])

		switch key {
		case "desc", "details":
			key = event.SectionNote
		case "where":
			key = event.SectionIn
		}
		sections[key] = val
	}

	return sections
}

// Title date patterns, tried in priority order; within one pattern the
// rightmost match wins since later phrases in a title tend to be the more
// specific ones.
var titleDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(today|tomorrow|tmr|tmrw)\b`),
	regexp.MustCompile(`(?i)\b(this|next)\s+(` + datemath.WeekdayPattern + `)\b`),
	regexp.MustCompile(`(?i)\b(` + datemath.WeekdayPattern + `)\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}[./-]\d{1,2})\b`),
	regexp.MustCompile(`(?i)\b(` + datemath.MonthPattern + `)\s+\d{1,2}(st|nd|rd|th)?\b`),
}

// InferDateFromTitle scans a title for an embedded date phrase. It returns
// the title with the phrase removed plus the phrase itself, or the title
// unchanged and "" when nothing matched. Callers only invoke this when the
// query had no explicit "on" section.
func InferDateFromTitle(title string) (string, string) {
	t := strings.TrimSpace(title)
	if t == "" {
		return t, ""
	}

	for _, pat := range titleDatePatterns {
		locs := pat.FindAllStringIndex(t, -1)
		if len(locs) == 0 {
			continue
		}
		m := locs[len(locs)-1]
		phrase := strings.TrimSpace(t[m[0]:m[1]])
		rest := strings.TrimSpace(t[:m[0]] + t[m[1]:])
		return rest, phrase
	}

	return t, ""
}
