package http

import (
	"quick-event/internal/event"
	"quick-event/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case event.ErrEmptyQuery:
		return response.NewHTTPError(400, "query must not be empty")
	case event.ErrUnknownProfile:
		return response.NewHTTPError(400, "unknown profile")
	case event.ErrCalendarUnavailable:
		return response.NewHTTPError(503, "calendar API is not configured")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
