package stage_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	stageOrder "github.com/m04kA/SMC-TyreService/internal/usecase/stage_order"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid appointment date, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid checkout data"
	msgInvalidSlot        = "slot does not exist in the time slot configuration or is a break"
	msgSlotAlreadyBooked  = "this slot is already booked for the selected date"
	msgConfigNotFound     = "time slot configuration not found"
	msgNoActiveConfig     = "no time slot configuration has been set up"
)

type Handler struct {
	useCase StageOrderUseCase
	logger  Logger
}

func NewHandler(useCase StageOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/staged-orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StageOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/staged-orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /checkout/staged-orders - Invalid date %q: %v", req.Appointment.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, stageOrder.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /checkout/staged-orders - Slot already booked: date=%s, slot_id=%s",
				req.Appointment.Date, req.Appointment.SlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, stageOrder.ErrInvalidSlot):
			h.logger.Warn("POST /checkout/staged-orders - Invalid slot: slot_id=%s", req.Appointment.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, stageOrder.ErrInvalidInput):
			h.logger.Warn("POST /checkout/staged-orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, stageOrder.ErrConfigNotFound):
			h.logger.Warn("POST /checkout/staged-orders - Config not found: time_slot_id=%v", req.Appointment.TimeSlotID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, stageOrder.ErrNoActiveConfig):
			h.logger.Warn("POST /checkout/staged-orders - No active config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		default:
			h.logger.Error("POST /checkout/staged-orders - Failed to stage order: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/staged-orders - Order staged successfully: temp_order_id=%s, expires_at=%s",
		result.ID, result.ExpiresAt.Format("15:04:05"))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
