package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	apptRepo AppointmentRepository
	resolver ConfigResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, resolver ConfigResolver, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Только чтение: ничего не резервирует.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация слотов
	res, err := uc.resolver.ResolveConfig(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, booking_guard.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableSlots: config id=%d not found", *req.TimeSlotID)
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve config: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve config: %v", ErrInternal, err)
	}
	if res.Kind == booking_guard.NoActiveConfiguration {
		uc.logger.Warn("GetAvailableSlots: no active configuration")
		return nil, ErrNoActiveConfig
	}

	// 3. Занятые слоты на дату
	bookedIDs, err := uc.apptRepo.ListActiveSlotIDs(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments on %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 4. Доступность
	slots := markAvailability(res.Config.GeneratedSlots, bookedIDs)

	uc.logger.Info("GetAvailableSlots: config id=%d, %d slots, %d booked on %s",
		res.Config.ID, len(slots), len(bookedIDs), req.Date)

	return &Response{
		Date:       req.Date,
		TimeSlotID: res.Config.ID,
		Slots:      slots,
	}, nil
}

// markAvailability помечает слот свободным, если это не перерыв и его нет среди занятых
func markAvailability(generated []domain.Slot, bookedIDs []string) []domain.AvailableSlot {
	booked := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	result := make([]domain.AvailableSlot, 0, len(generated))
	for _, s := range generated {
		_, taken := booked[s.SlotID]
		result = append(result, domain.AvailableSlot{
			Slot:        s,
			IsAvailable: !s.IsBreak && !taken,
		})
	}
	return result
}
