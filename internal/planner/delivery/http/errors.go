package http

import (
	"net/http"

	"smartplan/internal/planner"
	"smartplan/pkg/response"
)

// mapError translates planner domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case planner.ErrEmptyDescription:
		return response.NewHTTPError(http.StatusBadRequest, "task description is required")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "failed to parse task")
	}
}
