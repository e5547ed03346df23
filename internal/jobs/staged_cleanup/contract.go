package staged_cleanup

import (
	"context"
	"time"
)

// StagedOrderRepository удаление истекших черновиков
type StagedOrderRepository interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Metrics счетчик удаленных черновиков
type Metrics interface {
	AddStagedOrdersExpired(n int64)
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
