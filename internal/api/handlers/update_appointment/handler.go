package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-TyreService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgInvalidInput         = "invalid appointment data"
	msgNotFound             = "appointment not found"
	msgNotEditable          = "cancelled or deleted appointments cannot be edited"
	msgInvalidSlot          = "slot does not exist in the time slot configuration or is a break"
	msgSlotAlreadyBooked    = "this slot is already booked for the selected date"
	msgConfigNotFound       = "time slot configuration not found"
	msgNoActiveConfig       = "no time slot configuration has been set up"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PUT /appointments/{id} - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrSlotAlreadyBooked):
			h.logger.Warn("PUT /appointments/{id} - Slot already booked: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, updateAppointment.ErrInvalidSlot):
			h.logger.Warn("PUT /appointments/{id} - Invalid slot: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrConfigNotFound):
			h.logger.Warn("PUT /appointments/{id} - Config not found: time_slot_id=%v", req.TimeSlotID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, updateAppointment.ErrNoActiveConfig):
			h.logger.Warn("PUT /appointments/{id} - No active config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
