package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	"github.com/m04kA/SMC-TyreService/internal/service/appointments"
)

const (
	msgInvalidIncludeDeleted = "includeDeleted must be true or false"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (optional, YYYY-MM-DD), includeDeleted (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := ToServiceRequest(query.Get("date"), query.Get("includeDeleted"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid includeDeleted: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeDeleted)
		return
	}

	result, err := h.service.ListByDate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: date=%s, count=%d",
		query.Get("date"), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
