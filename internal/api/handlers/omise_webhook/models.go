package omise_webhook

import (
	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
	reconcilePayment "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"
)

// AckResponse подтверждение приема события
type AckResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}

// ToUseCaseRequest конвертирует проверенное событие в запрос use case.
// Charge id служит и ID транзакции, и ключом сессии, если checkout_session_id не передан.
func ToUseCaseRequest(ev *omisegateway.ChargeEvent) *reconcilePayment.Request {
	return &reconcilePayment.Request{
		EventID:       ev.EventID,
		EventType:     ev.EventType,
		ChargeStatus:  ev.ChargeStatus,
		TransactionID: ev.ChargeID,
		SessionID:     ev.ChargeID,
		Amount:        ev.Amount,
		Currency:      ev.Currency,
		Method:        ev.Method,
		Metadata:      ev.Metadata,
		Raw:           ev.Raw,
	}
}
