package omise_webhook

import (
	"context"

	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
	reconcilePayment "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"
)

// EventVerifier перечитывает событие у платежного провайдера
type EventVerifier interface {
	VerifyEvent(ctx context.Context, eventID string) (*omisegateway.ChargeEvent, error)
}

type ReconcilePaymentUseCase interface {
	Execute(ctx context.Context, req *reconcilePayment.Request) (*reconcilePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
