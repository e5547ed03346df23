package stage_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// StagedOrderRepository интерфейс хранилища черновиков заказов
type StagedOrderRepository interface {
	Create(ctx context.Context, s *domain.StagedOrder) (*domain.StagedOrder, error)
}

// BookingGuard проверка, что слот можно занять
type BookingGuard interface {
	Check(ctx context.Context, req booking_guard.CheckRequest) (*booking_guard.CheckResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
