package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, upd domain.AppointmentUpdate) (*domain.Appointment, error)
}

// BookingGuard проверка, что слот можно занять
type BookingGuard interface {
	Check(ctx context.Context, req booking_guard.CheckRequest) (*booking_guard.CheckResult, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики конфликтов бронирования
type Metrics interface {
	IncBookingConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
