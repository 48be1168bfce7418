package http

import (
	"net/http"

	"smartplan/internal/schedule"
	"smartplan/pkg/response"
)

// mapError translates schedule domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case schedule.ErrInvalidWindow:
		return response.NewHTTPError(http.StatusBadRequest, "working-hours window is invalid")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "failed to build schedule")
	}
}
