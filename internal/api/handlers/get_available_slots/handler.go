package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-TyreService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "date is required"
	msgInvalidQuery   = "invalid date (expected YYYY-MM-DD) or timeSlotId"
	msgConfigNotFound = "time slot configuration not found"
	msgNoActiveConfig = "no time slot configuration has been set up"
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

// Handle GET /api/v1/slots/available
// Query params: date (required, YYYY-MM-DD), timeSlotId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, r.URL.Query().Get("timeSlotId"))
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getAvailableSlots.ErrConfigNotFound):
			h.logger.Warn("GET /slots/available - Config not found: time_slot_id=%v", useCaseReq.TimeSlotID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, getAvailableSlots.ErrNoActiveConfig):
			h.logger.Warn("GET /slots/available - No active config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		default:
			h.logger.Error("GET /slots/available - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - Slots retrieved successfully: date=%s, time_slot_id=%d, slots_count=%d",
		dateStr, result.TimeSlotID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
