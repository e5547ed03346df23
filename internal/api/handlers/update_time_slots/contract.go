package update_time_slots

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig/models"
)

type SlotConfigService interface {
	Update(ctx context.Context, id int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
