package omisegateway

import "encoding/json"

// Тип события о завершении платежа
const EventChargeComplete = "charge.complete"

// Статусы платежа Omise, которые различает сервис
const (
	ChargeSuccessful = "successful"
	ChargeFailed     = "failed"
)

// IncomingEvent тело вебхука. Доверяем только id: остальное перечитываем у Omise.
type IncomingEvent struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// ChargeEvent проверенное событие с данными платежа
type ChargeEvent struct {
	EventID      string
	EventType    string
	ChargeID     string
	ChargeStatus string
	Amount       int64 // в минимальных единицах валюты
	Currency     string
	Method       string
	FailureCode  string
	Metadata     map[string]interface{}
	Raw          json.RawMessage
}

// IsSuccessful true, если платёж прошёл
func (e *ChargeEvent) IsSuccessful() bool {
	return e.ChargeStatus == ChargeSuccessful
}
