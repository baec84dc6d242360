package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookcore/appointment-service/internal/api/handlers"
	getAvailableSlots "github.com/bookcore/appointment-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID  = "invalid service ID"
	msgInvalidStaffID    = "invalid staff ID"
	msgInvalidCustomerID = "invalid customer ID"
	msgInvalidDate       = "invalid date, expected YYYY-MM-DD"
	msgServiceNotFound   = "service not found"
	msgStaffNotFound     = "staff member not found"
	msgStaffNotAssigned  = "staff member is not assigned to this service"
	msgInvalidInput      = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, ok := optionalID(w, r, "staffId", msgInvalidStaffID, h.logger)
	if !ok {
		return
	}
	customerID, ok := optionalID(w, r, "customerId", msgInvalidCustomerID, h.logger)
	if !ok {
		return
	}

	req, err := ToUseCaseRequest(serviceID, r.URL.Query().Get("date"), staffID, customerID)
	if err != nil {
		h.logger.Warn("GET /services/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound),
			errors.Is(err, getAvailableSlots.ErrServiceInactive):
			h.logger.Warn("GET /services/{id}/slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /services/{id}/slots - Staff not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotAssigned):
			h.logger.Warn("GET /services/{id}/slots - Staff not assigned: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgStaffNotAssigned)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /services/{id}/slots - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/slots - OK: service_id=%d, slots=%d", serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// optionalID parses an optional int64 query parameter. It writes the
// error response itself and reports false when parsing fails.
func optionalID(w http.ResponseWriter, r *http.Request, name, msg string, logger Logger) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("GET /services/{id}/slots - Invalid %s: %v", name, err)
		handlers.RespondBadRequest(w, msg)
		return nil, false
	}

	return &id, true
}
