package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TyreService/internal/service/appointments/models"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// Service сервис жизненного цикла записей
type Service struct {
	apptRepo  AppointmentRepository
	orderRepo OrderRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	orderRepo OrderRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:  apptRepo,
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	a, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(a), nil
}

// ListByDate возвращает записи на дату (или все), по умолчанию без удаленных
func (s *Service) ListByDate(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentFilter{IncludeDeleted: req.IncludeDeleted}
	if req.Date != nil {
		date, err := types.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("ListByDate: invalid date=%s", *req.Date)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Date = &date
	}

	list, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// UpdateStatus меняет статус по допустимому переходу.
// Отмена выполняется через Cancel и проверяет оплату.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	status := domain.AppointmentStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if status == domain.StatusCancelled {
		if err := s.Cancel(ctx, id); err != nil {
			return nil, err
		}
		return s.GetByID(ctx, id)
	}

	var result *domain.Appointment
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.load(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}
		if a.Status == status {
			result = a
			return nil
		}
		if a.IsDeleted || !a.Status.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: transition %s -> %s refused for appointment id=%d", a.Status, status, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, status)
		}
		if err := s.apptRepo.UpdateStatus(txCtx, id, status); err != nil {
			s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %w", ErrInternal, err)
		}
		a.Status = status
		result = a
		return nil
	})
	if err != nil {
		return nil, s.wrap(err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, status)
	return models.FromDomainAppointment(result), nil
}

// Confirm переводит запись в confirmed после оплаты.
// Уже подтвержденная запись не меняется, отмененную подтвердить нельзя.
func (s *Service) Confirm(ctx context.Context, id int64) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.load(txCtx, "Confirm", id)
		if err != nil {
			return err
		}
		if a.Status == domain.StatusConfirmed && !a.IsDeleted {
			return nil
		}
		if a.IsDeleted || !a.Status.CanTransitionTo(domain.StatusConfirmed) {
			s.logger.Warn("Confirm: appointment id=%d is %s (deleted=%t)", id, a.Status, a.IsDeleted)
			return fmt.Errorf("%w: %s -> confirmed", ErrInvalidTransition, a.Status)
		}
		if err := s.apptRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			s.logger.Error("Confirm: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Confirm - repository error: %w", ErrInternal, err)
		}
		s.logger.Info("Confirm: appointment id=%d confirmed", id)
		return nil
	})
	return s.wrap(err)
}

// Cancel отменяет и мягко удаляет запись, освобождая слот.
// Если у связанного заказа есть платеж с суммой больше нуля, возвращает ErrPaymentExists.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.load(txCtx, "Cancel", id)
		if err != nil {
			return err
		}
		if a.IsDeleted {
			s.logger.Warn("Cancel: appointment id=%d already deleted", id)
			return ErrAppointmentNotFound
		}

		paid, err := s.orderRepo.HasPaidPaymentForAppointment(txCtx, id)
		if err != nil {
			s.logger.Error("Cancel: failed to check payments for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - order repository error: %w", ErrInternal, err)
		}
		if paid {
			s.logger.Warn("Cancel: appointment id=%d has a paid order", id)
			return ErrPaymentExists
		}

		if err := s.apptRepo.SoftDelete(txCtx, id); err != nil {
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return s.wrap(err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled and deleted", id)
	return nil
}

// load получает запись с блокировкой строки
func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	a, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return a, nil
}

// wrap оставляет ошибки сервиса как есть, ошибки транзакции считает внутренними
func (s *Service) wrap(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrAppointmentNotFound, ErrInvalidInput, ErrInvalidTransition, ErrPaymentExists, ErrInternal} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
