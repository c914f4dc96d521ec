package event

import "errors"

var (
	ErrEmptyQuery          = errors.New("query is empty")
	ErrUnknownProfile      = errors.New("unknown calendar profile")
	ErrCalendarUnavailable = errors.New("calendar API is not configured")
)
