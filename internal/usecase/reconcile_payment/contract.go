package reconcile_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	UpdatePayments(ctx context.Context, id int64, payments []domain.Payment) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CreateIfSlotFree не прерывает транзакцию при занятом слоте, возвращает ErrSlotTaken
	CreateIfSlotFree(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// AppointmentConfirmer переводит запись в confirmed
type AppointmentConfirmer interface {
	Confirm(ctx context.Context, id int64) error
}

// CatalogRepository интерфейс каталога товаров, услуг и налогов
type CatalogRepository interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ApplyStockDelta(ctx context.Context, productID int64, delta int) (int, error)
	GetCurrentTax(ctx context.Context) (*domain.Tax, error)
}

// StagedOrderRepository интерфейс хранилища черновиков заказов
type StagedOrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, now time.Time) (*domain.StagedOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConfigResolver находит конфигурацию слотов (явную или активную)
type ConfigResolver interface {
	ResolveConfig(ctx context.Context, id *int64) (booking_guard.Resolution, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка email
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMSSender отправка SMS
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Metrics бизнес-счетчики обработки платежей
type Metrics interface {
	IncWebhookEvent(outcome string)
	IncStockAdjustment(negative bool)
	IncNotificationFailure(channel string)
	IncBookingConflict(source string)
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
