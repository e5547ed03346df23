package slotconfig

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeFormat возвращается, если время не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidTimeRange возвращается при нарушении порядка времени или выходе перерыва за рабочие часы
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrNoSlotsGenerated возвращается, если при заданной длительности не помещается ни одного слота
	ErrNoSlotsGenerated = errors.New("configuration produces no slots")

	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("time slot configuration not found")

	// ErrConfigAlreadyExists возвращается при попытке создать вторую конфигурацию
	ErrConfigAlreadyExists = errors.New("time slot configuration already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
