package slotconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	configRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/slotconfig"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig/models"
)

// Service сервис конфигурации рабочих часов и слотов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Create создает единственную конфигурацию слотов
func (s *Service) Create(ctx context.Context, req *models.CreateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Create: creating time slot config %s-%s duration=%d", req.StartTime, req.EndTime, req.Duration)

	// 1. Разбираем входные данные
	cfgSettings, err := settingsFromCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем инварианты и генерируем слоты
	slots, err := cfgSettings.generate()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем; вторая конфигурация отклоняется атомарно на уровне БД
	created, err := s.configRepo.Create(ctx, &domain.TimeSlotConfig{
		StartTime:      cfgSettings.start,
		EndTime:        cfgSettings.end,
		BreakTime:      cfgSettings.brk,
		Duration:       cfgSettings.duration,
		GeneratedSlots: slots,
	})
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigAlreadyExists) {
			s.logger.Warn("Create: config already exists")
			return nil, ErrConfigAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created config id=%d with %d slots", created.ID, len(created.GeneratedSlots))
	return models.FromDomainConfig(created), nil
}

// Update применяет частичное обновление и генерирует слоты заново.
// Идентификаторы слотов позиционные, поэтому ссылки существующих записей могут устареть.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating time slot config id=%d", id)

	// 1. Получаем текущую конфигурацию
	current, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Update: config id=%d not found", id)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error for config id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Накладываем изменения
	cfgSettings, err := settingsFromUpdate(current, req)
	if err != nil {
		s.logger.Warn("Update: validation failed for config id=%d: %v", id, err)
		return nil, err
	}

	// 3. Проверяем и генерируем заново
	slots, err := cfgSettings.generate()
	if err != nil {
		s.logger.Warn("Update: validation failed for config id=%d: %v", id, err)
		return nil, err
	}

	current.StartTime = cfgSettings.start
	current.EndTime = cfgSettings.end
	current.BreakTime = cfgSettings.brk
	current.Duration = cfgSettings.duration
	current.GeneratedSlots = slots

	// 4. Сохраняем
	updated, err := s.configRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Update: config id=%d not found during update", id)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error for config id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("Update: config id=%d regenerated with %d slots, existing slot references may be stale",
		id, len(updated.GeneratedSlots))
	return models.FromDomainConfig(updated), nil
}

// GetActive возвращает текущую конфигурацию
func (s *Service) GetActive(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetActive: no time slot config")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// GetByID получает конфигурацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ConfigResponse, error) {
	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetByID: config id=%d not found", id)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetByID: repository error for config id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

func settingsFromCreate(req *models.CreateConfigRequest) (settings, error) {
	var (
		out settings
		err error
	)

	if out.start, err = parseTime("startTime", req.StartTime); err != nil {
		return settings{}, err
	}
	if out.end, err = parseTime("endTime", req.EndTime); err != nil {
		return settings{}, err
	}
	if out.brk, err = parseBreak(req.BreakTime); err != nil {
		return settings{}, err
	}
	out.duration = req.Duration

	return out, nil
}

func settingsFromUpdate(current *domain.TimeSlotConfig, req *models.UpdateConfigRequest) (settings, error) {
	out := settings{
		start:    current.StartTime,
		end:      current.EndTime,
		brk:      current.BreakTime,
		duration: current.Duration,
	}

	var err error
	if req.StartTime != nil {
		if out.start, err = parseTime("startTime", *req.StartTime); err != nil {
			return settings{}, err
		}
	}
	if req.EndTime != nil {
		if out.end, err = parseTime("endTime", *req.EndTime); err != nil {
			return settings{}, err
		}
	}
	switch {
	case req.BreakTime != nil:
		if out.brk, err = parseBreak(req.BreakTime); err != nil {
			return settings{}, err
		}
	case req.RemoveBreak:
		out.brk = nil
	}
	if req.Duration != nil {
		out.duration = *req.Duration
	}

	return out, nil
}
