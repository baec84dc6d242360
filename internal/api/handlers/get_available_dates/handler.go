package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookcore/appointment-service/internal/api/handlers"
	getAvailableDates "github.com/bookcore/appointment-service/internal/usecase/get_available_dates"
)

const (
	msgInvalidServiceID = "invalid service ID"
	msgInvalidStaffID   = "invalid staff ID"
	msgInvalidDays      = "invalid days parameter"
	msgServiceNotFound  = "service not found"
	msgStaffNotFound    = "staff member not found"
	msgStaffNotAssigned = "staff member is not assigned to this service"
	msgInvalidInput     = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	req := &getAvailableDates.Request{ServiceID: serviceID}

	if raw := r.URL.Query().Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /services/{id}/available-dates - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /services/{id}/available-dates - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.HorizonDays = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrServiceNotFound),
			errors.Is(err, getAvailableDates.ErrServiceInactive):
			h.logger.Warn("GET /services/{id}/available-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDates.ErrStaffNotFound):
			h.logger.Warn("GET /services/{id}/available-dates - Staff not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableDates.ErrStaffNotAssigned):
			h.logger.Warn("GET /services/{id}/available-dates - Staff not assigned: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgStaffNotAssigned)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /services/{id}/available-dates - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/available-dates - OK: service_id=%d, dates=%d",
		serviceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
