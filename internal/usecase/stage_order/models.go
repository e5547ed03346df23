package stage_order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Appointment черновик записи
type Appointment struct {
	Name       string
	Phone      string
	Email      string
	Date       types.Date
	SlotID     string
	TimeSlotID *int64
	Notes      string
}

// Item позиция заказа: товар или услуга из каталога
type Item struct {
	Kind     domain.ItemKind
	RefID    int64
	Quantity int
}

// Request модель запроса на сохранение черновика перед оплатой
type Request struct {
	Appointment   Appointment
	Items         []Item
	PaymentOption domain.PaymentOption // full или partial
	Charges       decimal.Decimal      // комиссия платежной системы
	PaymentAmount decimal.Decimal      // сумма к оплате сейчас
}

// Response модель ответа: id черновика передается провайдеру как метаданные temp_order_id
type Response struct {
	ID        uuid.UUID
	Time      string // метка слота "HH:MM - HH:MM"
	ExpiresAt time.Time
}
