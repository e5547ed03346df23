package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig"
)

const msgNotFound = "no time slot configuration has been set up"

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

// Handle GET /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetActive(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrConfigNotFound):
			h.logger.Warn("GET /time-slots - Config not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /time-slots - Failed to get config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots - Config retrieved successfully: config_id=%d, slots_count=%d",
		cfg.ID, len(cfg.GeneratedSlots))
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
