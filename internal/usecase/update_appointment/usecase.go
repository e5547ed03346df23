package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
	"github.com/m04kA/SMC-TyreService/pkg/ptr"
)

// UseCase use case для изменения записи администратором
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

// Execute выполняет частичное обновление записи.
// При переносе на другую дату или слот повторяет проверку занятости, исключая саму запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Текущее состояние записи (FOR UPDATE)
		current, err := uc.apptRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		// 3. Отмененные и удаленные записи не редактируются
		if !current.CanBeEdited() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d is %s (deleted=%t)",
				req.ID, current.Status, current.IsDeleted)
			return ErrNotEditable
		}

		upd := domain.AppointmentUpdate{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			EmployeeID: req.EmployeeID,
			Notes:      req.Notes,
		}

		// 4. Перенос: проверка нового слота без учета самой записи
		if req.movesSlot() {
			date := current.Date
			if req.Date != nil {
				date = *req.Date
			}
			slotID := current.SlotID
			if req.SlotID != nil {
				slotID = *req.SlotID
			}

			checked, err := uc.guard.Check(txCtx, booking_guard.CheckRequest{
				Date:                 date,
				SlotID:               slotID,
				TimeSlotID:           req.TimeSlotID,
				ExcludeAppointmentID: ptr.Ptr(current.ID),
			})
			if err != nil {
				if errors.Is(err, booking_guard.ErrSlotAlreadyBooked) {
					uc.metrics.IncBookingConflict("guard")
				}
				return mapGuardError(err)
			}

			upd.Date = ptr.Ptr(date)
			upd.SlotID = ptr.Ptr(checked.Slot.SlotID)
			upd.TimeSlotID = ptr.Ptr(checked.Config.ID)
			upd.Time = ptr.Ptr(checked.Slot.Label())
		}

		// 5. Сохраняем
		updated, err := uc.apptRepo.Update(txCtx, req.ID, upd)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.metrics.IncBookingConflict("constraint")
				uc.logger.Warn("UpdateAppointment: target slot taken concurrently for id=%d", req.ID)
				return ErrSlotAlreadyBooked
			}
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, wrapTxError(err)
	}

	uc.logger.Info("UpdateAppointment: updated appointment id=%d (%s %s)", result.ID, result.Date, result.SlotID)

	return newResponse(result), nil
}
