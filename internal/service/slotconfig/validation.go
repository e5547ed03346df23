package slotconfig

import (
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig/models"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// settings разобранные и проверенные параметры конфигурации
type settings struct {
	start    types.TimeString
	end      types.TimeString
	brk      *domain.BreakTime
	duration int
}

func parseTime(field, value string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidTimeFormat, field, value)
	}
	return ts, nil
}

func parseBreak(b *models.BreakTime) (*domain.BreakTime, error) {
	if b == nil {
		return nil, nil
	}
	if b.Start == "" && b.End == "" {
		return nil, nil
	}
	if b.Start == "" || b.End == "" {
		return nil, fmt.Errorf("%w: breakTime requires both start and end", ErrInvalidInput)
	}

	start, err := parseTime("breakTime.start", b.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("breakTime.end", b.End)
	if err != nil {
		return nil, err
	}

	return &domain.BreakTime{Start: start, End: end}, nil
}

// validate проверяет инварианты конфигурации:
// start < end, длительность 15..480, breakStart < breakEnd и перерыв внутри [start, end]
func (s settings) validate() error {
	if s.duration < domain.MinSlotDurationMinutes || s.duration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if !s.start.IsBefore(s.end) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, s.start, s.end)
	}

	if s.brk == nil {
		return nil
	}

	if !s.brk.Start.IsBefore(s.brk.End) {
		return fmt.Errorf("%w: break start %s must be before break end %s",
			ErrInvalidTimeRange, s.brk.Start, s.brk.End)
	}

	if s.brk.Start.IsBefore(s.start) || s.brk.End.IsAfter(s.end) {
		return fmt.Errorf("%w: break %s-%s is outside working hours %s-%s",
			ErrInvalidTimeRange, s.brk.Start, s.brk.End, s.start, s.end)
	}

	return nil
}

// generate проверяет параметры и нарезает слоты; пустой результат недопустим
func (s settings) generate() ([]domain.Slot, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	slots, err := GenerateSlots(s.start, s.end, s.brk, s.duration)
	if err != nil {
		return nil, err
	}

	bookable := 0
	for _, slot := range slots {
		if !slot.IsBreak {
			bookable++
		}
	}
	if bookable == 0 {
		return nil, fmt.Errorf("%w: duration %d does not fit into %s-%s", ErrNoSlotsGenerated, s.duration, s.start, s.end)
	}

	return slots, nil
}
