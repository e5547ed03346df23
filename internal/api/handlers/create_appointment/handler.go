package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-TyreService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid appointment data"
	msgInvalidSlot        = "slot does not exist in the time slot configuration or is a break"
	msgSlotAlreadyBooked  = "this slot is already booked for the selected date"
	msgConfigNotFound     = "time slot configuration not found"
	msgNoActiveConfig     = "no time slot configuration has been set up"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /appointments - Slot already booked: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: slot_id=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrConfigNotFound):
			h.logger.Warn("POST /appointments - Config not found: time_slot_id=%v", req.TimeSlotID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, createAppointment.ErrNoActiveConfig):
			h.logger.Warn("POST /appointments - No active config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, slot_id=%s, error=%v",
				req.Date, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, date=%s, slot_id=%s",
		result.ID, req.Date, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
