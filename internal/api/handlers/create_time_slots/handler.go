package create_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyExists      = "time slot configuration already exists, update it instead"
)

type Handler struct {
	service SlotConfigService
	logger  Logger
}

func NewHandler(service SlotConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrConfigAlreadyExists):
			h.logger.Warn("POST /time-slots - Config already exists")
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, slotconfig.ErrInvalidTimeFormat),
			errors.Is(err, slotconfig.ErrInvalidTimeRange),
			errors.Is(err, slotconfig.ErrNoSlotsGenerated),
			errors.Is(err, slotconfig.ErrInvalidInput):
			h.logger.Warn("POST /time-slots - Invalid config: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /time-slots - Failed to create config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots - Config created successfully: config_id=%d, slots_count=%d",
		result.ID, len(result.GeneratedSlots))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
