package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookcore/appointment-service/internal/api/handlers"
	"github.com/bookcore/appointment-service/internal/service/appointments"
	"github.com/bookcore/appointment-service/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgAppointmentNotFound  = "appointment not found"
	msgCannotCancel         = "appointment cannot be cancelled in its current status"
	msgInvalidInput         = "invalid request parameters"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %s", vars["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Cancelled: id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
