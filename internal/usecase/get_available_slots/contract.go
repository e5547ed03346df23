package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListActiveSlotIDs возвращает slotId всех активных записей на дату
	ListActiveSlotIDs(ctx context.Context, date types.Date) ([]string, error)
}

// ConfigResolver находит конфигурацию слотов (явную или активную)
type ConfigResolver interface {
	ResolveConfig(ctx context.Context, id *int64) (booking_guard.Resolution, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
