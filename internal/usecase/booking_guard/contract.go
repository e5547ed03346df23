package booking_guard

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindActiveBySlot(ctx context.Context, date types.Date, slotID string, excludeID *int64) (*domain.Appointment, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.TimeSlotConfig, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
