package gcalendar

import (
	"net/url"
	"strings"
)

const (
	timedStampFormat  = "20060102T150405"
	allDayStampFormat = "20060102"
)

// BuildEventURL serializes a resolved event into a pre-filled calendar
// event-page URL. It is a pure formatting function: no validation, no clock,
// no I/O. Base URLs whose path contains "/render" get the template-mode
// flag; the query string is appended with "?" or "&" depending on whether
// the base URL already carries one.
func BuildEventURL(p URLParams) string {
	params := url.Values{}

	if strings.Contains(p.BaseURL, "/render") {
		params.Set("action", "TEMPLATE")
	}

	params.Set("text", p.Title)
	params.Set("ctz", p.Timezone)

	if p.Src != "" {
		params.Set("src", p.Src)
	}
	if p.Details != "" {
		params.Set("details", p.Details)
	}
	if p.Location != "" {
		params.Set("location", p.Location)
	}
	if len(p.Guests) > 0 {
		params.Set("add", strings.Join(p.Guests, ","))
	}

	if p.Start != nil && p.End != nil {
		params.Set("dates", p.Start.Format(timedStampFormat)+"/"+p.End.Format(timedStampFormat))
	} else {
		params.Set("dates", p.AllDayStart.Format(allDayStampFormat)+"/"+p.AllDayEnd.Format(allDayStampFormat))
	}

	joiner := "?"
	if strings.Contains(p.BaseURL, "?") {
		joiner = "&"
	}
	return p.BaseURL + joiner + params.Encode()
}
