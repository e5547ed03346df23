package stage_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("stage_order: invalid input data")

	// ErrConfigNotFound возвращается, когда указанная конфигурация слотов не найдена
	ErrConfigNotFound = errors.New("stage_order: time slot configuration not found")

	// ErrNoActiveConfig возвращается, когда активной конфигурации нет
	ErrNoActiveConfig = errors.New("stage_order: no active time slot configuration")

	// ErrInvalidSlot возвращается, когда слота нет в конфигурации или это перерыв
	ErrInvalidSlot = errors.New("stage_order: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("stage_order: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("stage_order: internal error")
)
