package get_customer_appointments

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
	msgInvalidCustomerID = "invalid customer ID"
	msgInvalidStatus     = "invalid status filter"
	msgInvalidInput      = "invalid request parameters"
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

// Handle GET /api/v1/customers/{customerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %s", vars["customerId"])
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	req := &models.GetCustomerAppointmentsRequest{CustomerID: customerID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid status: customer=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed: customer=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
