package list_service_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookcore/appointment-service/internal/api/handlers"
	"github.com/bookcore/appointment-service/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid service ID"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/staff - Invalid service ID: %s", vars["serviceId"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.ListStaffForService(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/staff - Service not found: id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{id}/staff - Failed: id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
