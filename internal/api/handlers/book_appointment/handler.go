package book_appointment

import (
	"errors"
	"net/http"

	"github.com/bookcore/appointment-service/internal/api/handlers"
	bookAppointment "github.com/bookcore/appointment-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidBookingDate = "booking date must not be in the past"
	msgServiceNotFound    = "service not found"
	msgStaffNotFound      = "staff member not found"
	msgStaffNotAssigned   = "staff member is not assigned to this service"
	msgSlotNotAvailable   = "slot is not available"
	msgStaffConflict      = "staff unavailable"
	msgCustomerConflict   = "you already have an appointment at this time"
	msgSlotConflict       = "slot unavailable"
	msgInvalidInput       = "invalid request parameters"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrStaffConflict):
			h.logger.Warn("POST /appointments - Staff conflict: service_id=%d", req.ServiceID)
			handlers.RespondConflict(w, msgStaffConflict)

		case errors.Is(err, bookAppointment.ErrCustomerConflict):
			h.logger.Warn("POST /appointments - Customer conflict: service_id=%d", req.ServiceID)
			handlers.RespondConflict(w, msgCustomerConflict)

		case errors.Is(err, bookAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: service_id=%d", req.ServiceID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrServiceNotFound),
			errors.Is(err, bookAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookAppointment.ErrStaffNotAssigned):
			h.logger.Warn("POST /appointments - Staff not assigned: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgStaffNotAssigned)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Created: id=%d, ref=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
