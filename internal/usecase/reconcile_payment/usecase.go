package reconcile_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
)

const tracerName = "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"

// Dependencies хранилища и внешние сервисы usecase
type Dependencies struct {
	Orders       OrderRepository
	Appointments AppointmentRepository
	Confirmer    AppointmentConfirmer
	Catalog      CatalogRepository
	StagedOrders StagedOrderRepository
	Resolver     ConfigResolver
	TxManager    TransactionManager
	Notifier     Notifier
	SMS          SMSSender // nil: SMS отключены
	Metrics      Metrics
}

// Settings параметры обработки
type Settings struct {
	ProcessingTimeout    time.Duration // лимит на одно событие
	NotifyTimeout        time.Duration // лимит на отправку уведомлений
	ShopName             string
	AdminEmail           string // пусто: письмо администратору не отправляется
	DefaultTaxName       string
	DefaultTaxPercentage decimal.Decimal
}

// UseCase сверка платежного события с заказами и записями
type UseCase struct {
	deps         Dependencies
	settings     Settings
	tracer       trace.Tracer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deps Dependencies, settings Settings, logger Logger) *UseCase {
	return &UseCase{
		deps:         deps,
		settings:     settings,
		tracer:       otel.Tracer(tracerName),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает проверенное событие провайдера.
//
// Событие со ссылкой на заказ (order_id) обновляет существующий заказ,
// без ссылки создает заказ и запись из черновика. Повторная доставка ничего не меняет.
// Ошибки уведомлений не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	if uc.settings.ProcessingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.ProcessingTimeout)
		defer cancel()
	}

	ctx, span := uc.tracer.Start(ctx, "ReconcilePayment", trace.WithAttributes(
		attribute.String("payment.event_id", req.EventID),
		attribute.String("payment.event_type", req.EventType),
		attribute.String("payment.charge_status", req.ChargeStatus),
	))
	defer func() {
		outcome := OutcomeFailed
		if resp != nil {
			outcome = resp.Outcome
		}
		span.SetAttributes(attribute.String("payment.outcome", string(outcome)))
		if err != nil && outcome == OutcomeFailed {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		uc.deps.Metrics.IncWebhookEvent(string(outcome))
	}()

	uc.logger.Info("ReconcilePayment: event=%s, type=%s, charge=%s, status=%s",
		req.EventID, req.EventType, req.TransactionID, req.ChargeStatus)

	// 1. Интересуют только события о завершении платежа
	if req.EventType != omisegateway.EventChargeComplete {
		uc.logger.Info("ReconcilePayment: event=%s of type %s ignored", req.EventID, req.EventType)
		return &Response{Outcome: OutcomeIgnored}, nil
	}
	if req.TransactionID == "" {
		uc.logger.Warn("ReconcilePayment: event=%s has no charge id", req.EventID)
		return &Response{Outcome: OutcomeUnprocessable}, fmt.Errorf("%w: missing charge id", ErrInvalidInput)
	}

	meta := metadata(req.Metadata)
	orderID := meta.orderID()

	// 2. Отклоненный платеж
	if req.ChargeStatus != omisegateway.ChargeSuccessful {
		if orderID == nil {
			uc.logger.Info("ReconcilePayment: charge=%s not successful (%s), no order reference, ignored",
				req.TransactionID, req.ChargeStatus)
			return &Response{Outcome: OutcomeIgnored}, nil
		}
		return uc.markPaymentFailed(ctx, req, *orderID)
	}

	// 3. Случай A: заказ уже существует
	if orderID != nil {
		return uc.settleExistingOrder(ctx, req, meta, *orderID)
	}

	// 4. Случай B: заказ создается из черновика
	return uc.createFromStaged(ctx, req, meta)
}

// markPaymentFailed отмечает платеж заказа как failed, если он еще не оплачен полностью
func (uc *UseCase) markPaymentFailed(ctx context.Context, req *Request, orderID int64) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "ReconcilePayment.MarkFailed",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	now := uc.timeProvider.Now()
	outcome := OutcomePaymentFailed

	err := uc.deps.TxManager.DoSerializable(ctx, func(txCtx context.Context) error {
		outcome = OutcomePaymentFailed

		order, err := uc.loadOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if order.IsFullyPaid() {
			outcome = OutcomeDuplicate
			return nil
		}

		payments := applyPayment(order.Payments, domain.Payment{
			Method:        req.Method,
			Status:        domain.PaymentFailed,
			Currency:      req.Currency,
			TransactionID: req.TransactionID,
			RawPayload:    req.Raw,
			UpdatedAt:     now,
		}, true)

		if err := uc.deps.Orders.UpdatePayments(txCtx, order.ID, payments); err != nil {
			return fmt.Errorf("%w: failed to update payments: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return uc.fail("MarkFailed", err)
	}

	uc.logger.Warn("ReconcilePayment: charge=%s failed for order id=%d (%s)", req.TransactionID, orderID, outcome)
	return &Response{Outcome: outcome, OrderID: &orderID}, nil
}

// loadOrder получает заказ с блокировкой строки
func (uc *UseCase) loadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := uc.deps.Orders.GetByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			uc.logger.Warn("ReconcilePayment: order id=%d not found", orderID)
			return nil, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("%w: failed to get order id=%d: %w", ErrInternal, orderID, err)
	}
	return order, nil
}

// applyPayment записывает платеж в первую запись; keepAmount сохраняет прежнюю сумму
func applyPayment(existing []domain.Payment, p domain.Payment, keepAmount bool) []domain.Payment {
	payments := append([]domain.Payment(nil), existing...)
	if len(payments) == 0 {
		return append(payments, p)
	}
	if keepAmount {
		p.Amount = payments[0].Amount
	}
	if p.Method == "" {
		p.Method = payments[0].Method
	}
	payments[0] = p
	return payments
}

// fail логирует ошибку и приводит ее к ошибкам usecase
func (uc *UseCase) fail(op string, err error) (*Response, error) {
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrUnprocessableEvent), errors.Is(err, ErrInvalidInput):
		uc.logger.Warn("ReconcilePayment.%s: %v", op, err)
		return &Response{Outcome: OutcomeFailed}, err
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ReconcilePayment.%s: %v", op, err)
		return &Response{Outcome: OutcomeFailed}, err
	default:
		uc.logger.Error("ReconcilePayment.%s: %v", op, err)
		return &Response{Outcome: OutcomeFailed}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
