package reconcile_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/catalog"
	orderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/order"
	tempOrderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/temporder"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// createFromStaged создает запись и заказ из черновика после успешной оплаты.
// Все изменения выполняются в одной транзакции; уникальный payment_session_id
// не дает создать второй заказ при повторной доставке.
func (uc *UseCase) createFromStaged(ctx context.Context, req *Request, meta metadata) (*Response, error) {
	fallbackSession := req.SessionID
	if fallbackSession == "" {
		fallbackSession = req.TransactionID
	}
	sessionID := meta.sessionID(fallbackSession)
	tempID, hasTemp := meta.tempOrderID()

	ctx, span := uc.tracer.Start(ctx, "ReconcilePayment.StagedOrder", trace.WithAttributes(
		attribute.String("payment.session_id", sessionID),
		attribute.Bool("payment.has_temp_order", hasTemp),
	))
	defer span.End()

	now := uc.timeProvider.Now()

	// 1. Повторная доставка: заказ по этой сессии уже есть
	existing, err := uc.deps.Orders.GetBySessionID(ctx, sessionID)
	if err == nil {
		uc.logger.Info("ReconcilePayment: order id=%d already exists for session=%s", existing.ID, sessionID)
		if hasTemp {
			uc.dropStaged(ctx, tempID)
		}
		return &Response{Outcome: OutcomeDuplicate, OrderID: &existing.ID, AppointmentID: existing.AppointmentID}, nil
	}
	if !isNotFound(err) {
		return uc.fail("StagedOrder", fmt.Errorf("%w: failed to look up session=%s: %w", ErrInternal, sessionID, err))
	}

	// 2. Данные черновика: хранилище, затем устаревшие метаданные
	payload, fromStore, err := uc.resolvePayload(ctx, meta, tempID, hasTemp, now)
	if err != nil {
		return uc.fail("StagedOrder", err)
	}
	if payload.Appointment.Email == "" {
		uc.logger.Warn("ReconcilePayment: charge=%s has no customer email, event acknowledged without action",
			req.TransactionID)
		return &Response{Outcome: OutcomeUnprocessable}, fmt.Errorf("%w: customer email is missing", ErrUnprocessableEvent)
	}

	// 3. Конфигурация слотов и восстановление метки времени
	cfg := uc.resolveSlotConfig(ctx, payload.Appointment.TimeSlotID)
	if payload.Appointment.Time == "" && payload.Appointment.SlotID != "" {
		payload.Appointment.Time = healTimeLabel(cfg, payload.Appointment.SlotID)
		if payload.Appointment.Time == "" {
			uc.logger.Warn("ReconcilePayment: time label for slot=%s could not be restored", payload.Appointment.SlotID)
		}
	}

	paymentStatus := meta.paymentType()
	if paymentStatus == "" {
		paymentStatus = payload.PaymentOption
	}
	if !paymentStatus.IsValid() {
		paymentStatus = domain.PaymentOptionFull
	}
	paidAmount := payload.PaymentAmount
	if !paidAmount.IsPositive() {
		paidAmount = req.amountDecimal()
	}

	var (
		created       *domain.Order
		slotConflict  bool
		negativeStock []bool
	)

	// 4. Запись, позиции, налог и заказ в одной транзакции.
	// Замыкание может выполняться повторно: метрики пишутся только после коммита.
	err = uc.deps.TxManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, slotConflict, negativeStock = nil, false, nil

		// 4.1. Запись сразу в статусе confirmed
		appt, err := uc.bookAppointment(txCtx, payload.Appointment, cfg)
		if err != nil {
			return err
		}
		slotConflict = appt == nil

		// 4.2. Позиции со снимком цен и списанием остатков
		priced, err := uc.priceItems(txCtx, payload.Items)
		if err != nil {
			return err
		}
		negativeStock = priced.negativeStock

		// 4.3. Налог
		tax, err := uc.currentTax(txCtx)
		if err != nil {
			return err
		}
		totals := domain.CalculateTotals(priced.subtotal, payload.Charges, tax.Percentage)

		// 4.4. Заказ
		snapshot := &domain.AppointmentSnapshot{
			Name:   payload.Appointment.Name,
			Phone:  payload.Appointment.Phone,
			Email:  payload.Appointment.Email,
			Date:   payload.Appointment.Date,
			SlotID: payload.Appointment.SlotID,
			Time:   payload.Appointment.Time,
		}
		var appointmentID *int64
		if appt != nil {
			appointmentID = &appt.ID
			snapshot.ID = &appt.ID
		}

		order, err := uc.deps.Orders.Create(txCtx, &domain.Order{
			Items:         priced.items,
			Subtotal:      totals.Subtotal,
			Charges:       payload.Charges,
			TaxName:       tax.Name,
			TaxPercentage: tax.Percentage,
			TaxAmount:     totals.TaxAmount,
			Total:         totals.Total,
			AppointmentID: appointmentID,
			Appointment:   snapshot,
			Customer: domain.CustomerSnapshot{
				Name:  payload.Appointment.Name,
				Email: payload.Appointment.Email,
				Phone: payload.Appointment.Phone,
			},
			Payments: []domain.Payment{{
				Method:        req.Method,
				Status:        paymentStatus.Status(),
				Amount:        paidAmount,
				Currency:      req.Currency,
				TransactionID: req.TransactionID,
				RawPayload:    req.Raw,
				UpdatedAt:     now,
			}},
			PaymentSessionID: &sessionID,
			SlotConflict:     slotConflict,
		})
		if err != nil {
			if errors.Is(err, orderRepo.ErrDuplicateSession) {
				return errDuplicateDelivery
			}
			return fmt.Errorf("%w: failed to create order: %w", ErrInternal, err)
		}

		// 4.5. Черновик использован
		if fromStore {
			if err := uc.deps.StagedOrders.Delete(txCtx, tempID); err != nil && !errors.Is(err, tempOrderRepo.ErrStagedOrderNotFound) {
				return fmt.Errorf("%w: failed to delete staged order %s: %w", ErrInternal, tempID, err)
			}
		}

		created = order
		return nil
	})
	if errors.Is(err, errDuplicateDelivery) {
		uc.logger.Info("ReconcilePayment: session=%s was processed concurrently", sessionID)
		return &Response{Outcome: OutcomeDuplicate}, nil
	}
	if err != nil {
		return uc.fail("StagedOrder", err)
	}

	for _, negative := range negativeStock {
		uc.deps.Metrics.IncStockAdjustment(negative)
	}
	if slotConflict {
		uc.deps.Metrics.IncBookingConflict("webhook")
		uc.logger.Warn("ReconcilePayment: order id=%d paid but slot=%s on %s is unavailable, flagged for admin",
			created.ID, payload.Appointment.SlotID, payload.Appointment.Date)
	}
	uc.logger.Info("ReconcilePayment: created order id=%d (total=%s) for session=%s",
		created.ID, created.Total.StringFixed(2), sessionID)

	uc.notify(ctx, notification{order: created, appointment: created.Appointment}, true)

	return &Response{
		Outcome:       OutcomeProcessed,
		OrderID:       &created.ID,
		AppointmentID: created.AppointmentID,
		SlotConflict:  slotConflict,
	}, nil
}

// resolvePayload возвращает черновик из хранилища или собранный из метаданных.
// fromStore true, если черновик нужно удалить после создания заказа.
func (uc *UseCase) resolvePayload(
	ctx context.Context,
	meta metadata,
	tempID uuid.UUID,
	hasTemp bool,
	now time.Time,
) (*domain.StagedOrderPayload, bool, error) {
	if hasTemp {
		staged, err := uc.deps.StagedOrders.GetByID(ctx, tempID, now)
		if err == nil {
			return &staged.Payload, true, nil
		}
		if !errors.Is(err, tempOrderRepo.ErrStagedOrderNotFound) {
			return nil, false, fmt.Errorf("%w: failed to get staged order %s: %w", ErrInternal, tempID, err)
		}
		uc.logger.Warn("ReconcilePayment: staged order %s not found or expired, using charge metadata", tempID)
	}

	payload, err := meta.legacyPayload()
	if err != nil {
		uc.logger.Warn("ReconcilePayment: legacy metadata items ignored: %v", err)
	}
	return payload, false, nil
}

// resolveSlotConfig ищет конфигурацию слотов; ошибка не прерывает обработку
func (uc *UseCase) resolveSlotConfig(ctx context.Context, id *int64) *domain.TimeSlotConfig {
	res, err := uc.deps.Resolver.ResolveConfig(ctx, id)
	if err != nil {
		uc.logger.Warn("ReconcilePayment: slot configuration lookup failed: %v", err)
		return nil
	}
	if res.Kind != booking_guard.Found {
		uc.logger.Warn("ReconcilePayment: no active slot configuration")
		return nil
	}
	return res.Config
}

// healTimeLabel восстанавливает метку "HH:MM - HH:MM" по слоту; пустая строка, если слот не найден
func healTimeLabel(cfg *domain.TimeSlotConfig, slotID string) string {
	if cfg == nil {
		return ""
	}
	slot, ok := cfg.FindSlot(slotID)
	if !ok {
		return ""
	}
	return slot.Label()
}

// bookAppointment создает подтвержденную запись. nil без ошибки означает,
// что слот занят или данных для записи недостаточно: заказ создается с отметкой конфликта.
func (uc *UseCase) bookAppointment(ctx context.Context, a domain.StagedAppointment, cfg *domain.TimeSlotConfig) (*domain.Appointment, error) {
	if cfg == nil || a.SlotID == "" || a.Date.Validate() != nil {
		uc.logger.Warn("ReconcilePayment: appointment not created (config=%t, slot=%q, date=%q)",
			cfg != nil, a.SlotID, a.Date)
		return nil, nil
	}

	var notes *string
	if a.Notes != "" {
		notes = &a.Notes
	}

	created, err := uc.deps.Appointments.CreateIfSlotFree(ctx, &domain.Appointment{
		Name:       a.Name,
		Phone:      a.Phone,
		Email:      a.Email,
		Date:       a.Date,
		SlotID:     a.SlotID,
		TimeSlotID: cfg.ID,
		Time:       a.Time,
		Status:     domain.StatusConfirmed,
		Notes:      notes,
	})
	if err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
	}
	return created, nil
}

// pricedItems позиции заказа с итогом
type pricedItems struct {
	items    []domain.OrderItem
	subtotal decimal.Decimal
	// negativeStock флаг на каждое списание: true, если остаток ушел в минус
	negativeStock []bool
}

// priceItems снимает цены из каталога и списывает остатки товаров.
// Остаток может стать отрицательным: заказ уже оплачен.
func (uc *UseCase) priceItems(ctx context.Context, staged []domain.StagedItem) (*pricedItems, error) {
	res := &pricedItems{items: make([]domain.OrderItem, 0, len(staged)), subtotal: decimal.Zero}

	for _, s := range staged {
		var item domain.OrderItem

		switch s.Kind {
		case domain.ItemProduct:
			product, err := uc.deps.Catalog.GetProduct(ctx, s.RefID)
			if errors.Is(err, catalogRepo.ErrProductNotFound) {
				uc.logger.Warn("ReconcilePayment: product id=%d not found, line skipped", s.RefID)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get product id=%d: %w", ErrInternal, s.RefID, err)
			}

			stock, err := uc.deps.Catalog.ApplyStockDelta(ctx, product.ID, -s.Quantity)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to adjust stock of product id=%d: %w", ErrInternal, product.ID, err)
			}
			res.negativeStock = append(res.negativeStock, stock < 0)
			if stock < 0 {
				uc.logger.Warn("ReconcilePayment: product id=%d stock is negative (%d)", product.ID, stock)
			}

			item = domain.OrderItem{Kind: s.Kind, RefID: product.ID, Name: product.Name, Brand: product.BrandName, Price: product.Price}

		case domain.ItemService:
			service, err := uc.deps.Catalog.GetService(ctx, s.RefID)
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("ReconcilePayment: service id=%d not found, line skipped", s.RefID)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get service id=%d: %w", ErrInternal, s.RefID, err)
			}

			item = domain.OrderItem{Kind: s.Kind, RefID: service.ID, Name: service.Name, Price: service.Price}

		default:
			uc.logger.Warn("ReconcilePayment: unknown item kind %q skipped", s.Kind)
			continue
		}

		item.Quantity = s.Quantity
		item.LineTotal = item.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
		res.subtotal = res.subtotal.Add(item.LineTotal)
		res.items = append(res.items, item)
	}

	return res, nil
}

// currentTax текущий налог или значение по умолчанию из конфигурации
func (uc *UseCase) currentTax(ctx context.Context) (*domain.Tax, error) {
	tax, err := uc.deps.Catalog.GetCurrentTax(ctx)
	if errors.Is(err, catalogRepo.ErrTaxNotFound) {
		return &domain.Tax{Name: uc.settings.DefaultTaxName, Percentage: uc.settings.DefaultTaxPercentage}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get current tax: %w", ErrInternal, err)
	}
	return tax, nil
}

// dropStaged удаляет черновик вне транзакции; ошибка только логируется
func (uc *UseCase) dropStaged(ctx context.Context, id uuid.UUID) {
	if err := uc.deps.StagedOrders.Delete(ctx, id); err != nil && !errors.Is(err, tempOrderRepo.ErrStagedOrderNotFound) {
		uc.logger.Warn("ReconcilePayment: failed to delete staged order %s: %v", id, err)
	}
}
