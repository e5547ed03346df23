package slotconfig

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	Create(ctx context.Context, cfg *domain.TimeSlotConfig) (*domain.TimeSlotConfig, error)
	GetActive(ctx context.Context) (*domain.TimeSlotConfig, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotConfig, error)
	Update(ctx context.Context, cfg *domain.TimeSlotConfig) (*domain.TimeSlotConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
