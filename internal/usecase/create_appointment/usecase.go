package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// UseCase use case для создания записи на шиномонтаж
type UseCase struct {
	apptRepo  AppointmentRepository
	guard     BookingGuard
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	guard BookingGuard,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:  apptRepo,
		guard:     guard,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка идут в одной сериализуемой транзакции,
// уникальный индекс по активным записям отклоняет оставшиеся гонки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, slot=%s, email=%s", req.Date, req.SlotID, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Проверка слота и создание записи в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Конфигурация, слот, занятость
		checked, err := uc.guard.Check(txCtx, booking_guard.CheckRequest{
			Date:       req.Date,
			SlotID:     req.SlotID,
			TimeSlotID: req.TimeSlotID,
		})
		if err != nil {
			if errors.Is(err, booking_guard.ErrSlotAlreadyBooked) {
				uc.metrics.IncBookingConflict("guard")
			}
			return mapGuardError(err)
		}

		// 2.2. Создаем запись с меткой времени слота
		created, err := uc.apptRepo.Create(txCtx, &domain.Appointment{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			Date:       req.Date,
			SlotID:     checked.Slot.SlotID,
			TimeSlotID: checked.Config.ID,
			Time:       checked.Slot.Label(),
			Status:     domain.StatusBooked,
			Notes:      req.Notes,
		})
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.metrics.IncBookingConflict("constraint")
				uc.logger.Warn("CreateAppointment: slot=%s on %s taken concurrently", req.SlotID, req.Date)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, wrapTxError(err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, slot=%s (%s) on %s",
		result.ID, result.SlotID, result.Time, result.Date)

	return newResponse(result), nil
}
