package http

import (
	"net/http"

	"smartplan/internal/insights"
	"smartplan/pkg/response"
)

// mapError translates insights domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case insights.ErrNoTasks:
		return response.NewHTTPError(http.StatusBadRequest, "at least one task is required")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "failed to analyze productivity")
	}
}
