package booking_guard

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/slotconfig"
)

// Guard проверяет, что пару (дата, слот) можно занять.
//
// Сама проверка ничего не резервирует. Вызывающий код выполняет Check и вставку
// в одной serializable транзакции, а уникальный индекс по активным записям
// закрывает оставшуюся гонку.
type Guard struct {
	apptRepo   AppointmentRepository
	configRepo ConfigRepository
	logger     Logger
}

// NewGuard создает новый экземпляр проверки бронирования
func NewGuard(apptRepo AppointmentRepository, configRepo ConfigRepository, logger Logger) *Guard {
	return &Guard{
		apptRepo:   apptRepo,
		configRepo: configRepo,
		logger:     logger,
	}
}

// ResolveConfig находит конфигурацию по явному id или единственную активную.
// Явный id, которого нет, это ошибка ErrConfigNotFound; отсутствие активной
// конфигурации возвращается как NoActiveConfiguration без ошибки.
func (g *Guard) ResolveConfig(ctx context.Context, id *int64) (Resolution, error) {
	if id != nil {
		cfg, err := g.configRepo.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, configRepo.ErrConfigNotFound) {
				return Resolution{}, fmt.Errorf("%w: id=%d", ErrConfigNotFound, *id)
			}
			return Resolution{}, fmt.Errorf("%w: ResolveConfig - get config id=%d: %w", ErrInternal, *id, err)
		}
		return Resolution{Kind: Found, Config: cfg}, nil
	}

	cfg, err := g.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return Resolution{Kind: NoActiveConfiguration}, nil
		}
		return Resolution{}, fmt.Errorf("%w: ResolveConfig - get active config: %w", ErrInternal, err)
	}

	return Resolution{Kind: Found, Config: cfg}, nil
}

// Check выполняет три проверки по порядку: конфигурация существует, слот есть в ней
// и не является перерывом, на эту дату слот не занят другой активной записью.
func (g *Guard) Check(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	if err := req.Date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	if req.SlotID == "" {
		return nil, fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	// 1. Конфигурация
	res, err := g.ResolveConfig(ctx, req.TimeSlotID)
	if err != nil {
		g.logger.Warn("BookingGuard: resolve config failed: %v", err)
		return nil, err
	}
	if res.Kind == NoActiveConfiguration {
		g.logger.Warn("BookingGuard: no active time slot configuration")
		return nil, ErrNoActiveConfig
	}

	// 2. Слот существует и бронируем
	slot, ok := res.Config.FindSlot(req.SlotID)
	if !ok {
		g.logger.Warn("BookingGuard: slot=%s not found in config id=%d", req.SlotID, res.Config.ID)
		return nil, fmt.Errorf("%w: slot %s does not exist", ErrInvalidSlot, req.SlotID)
	}
	if slot.IsBreak {
		g.logger.Warn("BookingGuard: slot=%s is a break", req.SlotID)
		return nil, fmt.Errorf("%w: slot %s is a break", ErrInvalidSlot, req.SlotID)
	}

	// 3. Слот свободен на эту дату
	existing, err := g.apptRepo.FindActiveBySlot(ctx, req.Date, req.SlotID, req.ExcludeAppointmentID)
	if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
		g.logger.Error("BookingGuard: failed to check slot occupancy: %v", err)
		return nil, fmt.Errorf("%w: Check - find active appointment: %w", ErrInternal, err)
	}
	if existing != nil {
		g.logger.Warn("BookingGuard: slot=%s on %s already held by appointment id=%d",
			req.SlotID, req.Date, existing.ID)
		return nil, fmt.Errorf("%w: %s on %s", ErrSlotAlreadyBooked, req.SlotID, req.Date)
	}

	return &CheckResult{Config: res.Config, Slot: slot}, nil
}
