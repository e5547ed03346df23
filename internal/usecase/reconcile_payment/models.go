package reconcile_payment

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/internal/domain"
)

// Outcome итог обработки события
type Outcome string

const (
	// OutcomeProcessed событие применено
	OutcomeProcessed Outcome = "processed"
	// OutcomeDuplicate повторная доставка, изменений нет
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeIgnored событие не относится к завершению платежа
	OutcomeIgnored Outcome = "ignored"
	// OutcomePaymentFailed платеж отклонен, отмечен в заказе
	OutcomePaymentFailed Outcome = "payment_failed"
	// OutcomeUnprocessable данных недостаточно, событие подтверждено без действий
	OutcomeUnprocessable Outcome = "unprocessable"
	// OutcomeFailed ошибка обработки
	OutcomeFailed Outcome = "failed"
)

// Request нормализованное событие платежного провайдера
type Request struct {
	EventID       string
	EventType     string
	ChargeStatus  string
	TransactionID string // ID платежа у провайдера
	SessionID     string // ключ уникальности заказа без checkout_session_id; пустой: TransactionID
	Amount        int64  // в минимальных единицах валюты
	Currency      string
	Method        string
	Metadata      map[string]interface{}
	Raw           json.RawMessage
}

// amountDecimal переводит минимальные единицы в сумму с двумя знаками
func (r *Request) amountDecimal() decimal.Decimal {
	return decimal.New(r.Amount, -2)
}

// Response результат обработки события
type Response struct {
	Outcome       Outcome
	OrderID       *int64
	AppointmentID *int64
	SlotConflict  bool // заказ оплачен, но слот успели занять
}

// notification данные для писем и SMS после фиксации транзакции
type notification struct {
	order       *domain.Order
	appointment *domain.AppointmentSnapshot
}
