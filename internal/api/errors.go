package api

import (
	"errors"
	"net/http"

	"fieldflow/backoffice/internal/importer"
	"fieldflow/backoffice/internal/services"
)

// statusForError maps service failures onto HTTP statuses. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrLEMNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateProfile):
		return http.StatusConflict
	case errors.Is(err, importer.ErrUnreadableFile),
		errors.Is(err, importer.ErrInsufficientGroupingKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidMapping),
		errors.Is(err, services.ErrNoTickets):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
