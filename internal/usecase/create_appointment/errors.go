package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrConfigNotFound возвращается, когда указанная конфигурация слотов не найдена
	ErrConfigNotFound = errors.New("create_appointment: time slot configuration not found")

	// ErrNoActiveConfig возвращается, когда активной конфигурации нет
	ErrNoActiveConfig = errors.New("create_appointment: no active time slot configuration")

	// ErrInvalidSlot возвращается, когда слота нет в конфигурации или это перерыв
	ErrInvalidSlot = errors.New("create_appointment: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда слот на эту дату уже занят
	ErrSlotAlreadyBooked = errors.New("create_appointment: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// wrapTxError оставляет ошибки usecase как есть, остальное (begin/commit/retries) считается внутренней ошибкой
func wrapTxError(err error) error {
	for _, known := range []error{
		ErrInvalidInput, ErrConfigNotFound, ErrNoActiveConfig, ErrInvalidSlot, ErrSlotAlreadyBooked, ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
