package update_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig/models"
)

const (
	msgInvalidConfigID    = "invalid time slot configuration id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "time slot configuration not found"
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

// Handle PUT /api/v1/time-slots/{configId}
// Слоты генерируются заново, существующие записи не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	configID, err := strconv.ParseInt(mux.Vars(r)["configId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /time-slots/{id} - Invalid config ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfigID)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), configID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrConfigNotFound):
			h.logger.Warn("PUT /time-slots/{id} - Config not found: config_id=%d", configID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slotconfig.ErrInvalidTimeFormat),
			errors.Is(err, slotconfig.ErrInvalidTimeRange),
			errors.Is(err, slotconfig.ErrNoSlotsGenerated),
			errors.Is(err, slotconfig.ErrInvalidInput):
			h.logger.Warn("PUT /time-slots/{id} - Invalid config: config_id=%d, error=%v", configID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /time-slots/{id} - Failed to update config: config_id=%d, error=%v", configID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /time-slots/{id} - Config updated successfully: config_id=%d, slots_count=%d",
		result.ID, len(result.GeneratedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
