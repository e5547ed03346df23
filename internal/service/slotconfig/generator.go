package slotconfig

import (
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

const (
	slotPrefix  = "slot_"
	breakPrefix = "break_"
)

// GenerateSlots нарезает рабочий день [start, end) на слоты длиной duration минут.
//
// Если очередной кандидат [cursor, cursor+duration) пересекает перерыв, вместо него
// выпускается ровно один слот-перерыв на точный интервал перерыва, а курсор переходит
// на конец перерыва. Нарезка останавливается, когда cursor+duration > end.
// Номер в идентификаторе общий для slot_N и break_N и растёт с единицы в порядке выпуска.
//
// Формат и границы проверяет вызывающий код; функция возвращает ошибку только на
// непарсируемом времени.
func GenerateSlots(start, end types.TimeString, brk *domain.BreakTime, duration int) ([]domain.Slot, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidTimeFormat, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidTimeFormat, err)
	}

	hasBreak := brk != nil
	var breakStart, breakEnd int
	if hasBreak {
		if breakStart, err = brk.Start.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: breakTime.start: %v", ErrInvalidTimeFormat, err)
		}
		if breakEnd, err = brk.End.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: breakTime.end: %v", ErrInvalidTimeFormat, err)
		}
	}

	slots := make([]domain.Slot, 0, (endMin-startMin)/duration+1)
	counter := 1
	breakEmitted := false

	for cursor := startMin; cursor+duration <= endMin; {
		if hasBreak && !breakEmitted && cursor < breakEnd && cursor+duration > breakStart {
			slots = append(slots, newSlot(breakPrefix, counter, breakStart, breakEnd, true))
			counter++
			breakEmitted = true
			cursor = breakEnd
			continue
		}

		slots = append(slots, newSlot(slotPrefix, counter, cursor, cursor+duration, false))
		counter++
		cursor += duration
	}

	return slots, nil
}

func newSlot(prefix string, n, from, to int, isBreak bool) domain.Slot {
	// границы уже проверены: from, to в пределах суток
	start, _ := types.NewTimeStringFromMinutes(from)
	end, _ := types.NewTimeStringFromMinutes(to)

	return domain.Slot{
		SlotID:    fmt.Sprintf("%s%d", prefix, n),
		StartTime: start,
		EndTime:   end,
		IsBreak:   isBreak,
	}
}
