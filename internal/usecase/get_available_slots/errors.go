package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrConfigNotFound возвращается, когда явно указанная конфигурация не найдена
	ErrConfigNotFound = errors.New("get_available_slots: time slot configuration not found")

	// ErrNoActiveConfig возвращается, когда активной конфигурации нет
	ErrNoActiveConfig = errors.New("get_available_slots: no active time slot configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
