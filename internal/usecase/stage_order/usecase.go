package stage_order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// UseCase use case для сохранения черновика заказа перед переходом к оплате
type UseCase struct {
	stagedRepo   StagedOrderRepository
	guard        BookingGuard
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; ttl <= 0 заменяется часом
func NewUseCase(stagedRepo StagedOrderRepository, guard BookingGuard, ttl time.Duration, logger Logger) *UseCase {
	if ttl <= 0 {
		ttl = domain.DefaultStagedOrderTTL
	}
	return &UseCase{
		stagedRepo:   stagedRepo,
		guard:        guard,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сохраняет черновик. Слот проверяется, но не резервируется:
// окончательное бронирование происходит при обработке платежа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StageOrder: email=%s, date=%s, slot=%s, items=%d",
		req.Appointment.Email, req.Appointment.Date, req.Appointment.SlotID, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StageOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот существует и свободен на момент оформления
	checked, err := uc.guard.Check(ctx, booking_guard.CheckRequest{
		Date:       req.Appointment.Date,
		SlotID:     req.Appointment.SlotID,
		TimeSlotID: req.Appointment.TimeSlotID,
	})
	if err != nil {
		return nil, mapGuardError(err)
	}

	// 3. Собираем черновик
	now := uc.timeProvider.Now()
	items := make([]domain.StagedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.StagedItem{Kind: item.Kind, RefID: item.RefID, Quantity: item.Quantity})
	}

	staged := &domain.StagedOrder{
		ID: uuid.New(),
		Payload: domain.StagedOrderPayload{
			Appointment: domain.StagedAppointment{
				Name:       req.Appointment.Name,
				Phone:      req.Appointment.Phone,
				Email:      req.Appointment.Email,
				Date:       req.Appointment.Date,
				SlotID:     checked.Slot.SlotID,
				TimeSlotID: &checked.Config.ID,
				Time:       checked.Slot.Label(),
				Notes:      req.Appointment.Notes,
			},
			Items:         items,
			PaymentOption: req.PaymentOption,
			Charges:       req.Charges,
			PaymentAmount: req.PaymentAmount,
		},
		ExpiresAt: now.Add(uc.ttl),
	}

	// 4. Сохраняем
	created, err := uc.stagedRepo.Create(ctx, staged)
	if err != nil {
		uc.logger.Error("StageOrder: failed to save staged order: %v", err)
		return nil, fmt.Errorf("%w: failed to save staged order: %v", ErrInternal, err)
	}

	uc.logger.Info("StageOrder: staged order id=%s expires at %s",
		created.ID, created.ExpiresAt.Format(time.RFC3339))

	return &Response{
		ID:        created.ID,
		Time:      created.Payload.Appointment.Time,
		ExpiresAt: created.ExpiresAt,
	}, nil
}
