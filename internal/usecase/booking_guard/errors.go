package booking_guard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_guard: invalid input data")

	// ErrConfigNotFound возвращается, когда явно указанная конфигурация не найдена
	ErrConfigNotFound = errors.New("booking_guard: time slot configuration not found")

	// ErrNoActiveConfig возвращается, когда конфигурация не указана и активной нет
	ErrNoActiveConfig = errors.New("booking_guard: no active time slot configuration")

	// ErrInvalidSlot возвращается, когда слота нет в конфигурации или это перерыв
	ErrInvalidSlot = errors.New("booking_guard: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда слот на эту дату уже занят активной записью
	ErrSlotAlreadyBooked = errors.New("booking_guard: slot already booked")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("booking_guard: internal error")
)
