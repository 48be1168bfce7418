package http

import (
	"net/http"

	"smartplan/internal/notification"
	"smartplan/pkg/response"
)

// mapError translates notification domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case notification.ErrMissingTaskID,
		notification.ErrMissingTaskTime,
		notification.ErrMissingMessage:
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "failed to schedule notification")
	}
}
