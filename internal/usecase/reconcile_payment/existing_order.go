package reconcile_payment

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	orderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/order"
	"github.com/m04kA/SMC-TyreService/internal/service/appointments"
)

// settleExistingOrder отмечает оплату существующего заказа и подтверждает связанную запись
func (uc *UseCase) settleExistingOrder(ctx context.Context, req *Request, meta metadata, orderID int64) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "ReconcilePayment.ExistingOrder",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	now := uc.timeProvider.Now()
	declared := meta.paymentType()
	if declared == "" {
		declared = domain.PaymentOptionFull
	}

	var (
		outcome Outcome
		settled *domain.Order
	)

	err := uc.deps.TxManager.DoSerializable(ctx, func(txCtx context.Context) error {
		outcome, settled = "", nil

		// 1. Заказ (FOR UPDATE)
		order, err := uc.loadOrder(txCtx, orderID)
		if err != nil {
			return err
		}

		// 2. Повторная доставка: заказ уже оплачен полностью или этот платеж уже записан
		if isAlreadyApplied(order, req.TransactionID, declared.Status()) {
			outcome = OutcomeDuplicate
			return nil
		}

		// 3. Записываем платеж
		order.Payments = applyPayment(order.Payments, domain.Payment{
			Method:        req.Method,
			Status:        declared.Status(),
			Amount:        req.amountDecimal(),
			Currency:      req.Currency,
			TransactionID: req.TransactionID,
			RawPayload:    req.Raw,
			UpdatedAt:     now,
		}, false)

		if err := uc.deps.Orders.UpdatePayments(txCtx, order.ID, order.Payments); err != nil {
			return fmt.Errorf("%w: failed to update payments: %w", ErrInternal, err)
		}

		// 4. Подтверждаем запись
		if order.AppointmentID != nil {
			if err := uc.deps.Confirmer.Confirm(txCtx, *order.AppointmentID); err != nil {
				if !errors.Is(err, appointments.ErrInvalidTransition) && !errors.Is(err, appointments.ErrAppointmentNotFound) {
					return fmt.Errorf("%w: failed to confirm appointment id=%d: %w", ErrInternal, *order.AppointmentID, err)
				}
				uc.logger.Warn("ReconcilePayment: appointment id=%d of order id=%d not confirmed: %v",
					*order.AppointmentID, order.ID, err)
			}
		}

		outcome = OutcomeProcessed
		settled = order
		return nil
	})
	if err != nil {
		return uc.fail("ExistingOrder", err)
	}

	if outcome == OutcomeDuplicate {
		uc.logger.Info("ReconcilePayment: order id=%d already settled, charge=%s skipped", orderID, req.TransactionID)
		return &Response{Outcome: OutcomeDuplicate, OrderID: &orderID}, nil
	}

	uc.logger.Info("ReconcilePayment: order id=%d settled as %s by charge=%s",
		orderID, declared.Status(), req.TransactionID)

	uc.notify(ctx, notification{order: settled, appointment: settled.Appointment}, false)

	return &Response{Outcome: OutcomeProcessed, OrderID: &orderID, AppointmentID: settled.AppointmentID}, nil
}

// isAlreadyApplied true для заказа, оплаченного полностью, и для повторного платежа с тем же статусом
func isAlreadyApplied(order *domain.Order, transactionID string, status domain.PaymentStatus) bool {
	if order.IsFullyPaid() {
		return true
	}
	p := order.PrimaryPayment()
	return p != nil && p.TransactionID == transactionID && p.Status == status
}

func isNotFound(err error) bool {
	return errors.Is(err, orderRepo.ErrOrderNotFound)
}
