package update_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotEditable возвращается для отмененных и удаленных записей
	ErrNotEditable = errors.New("update_appointment: appointment can no longer be edited")

	// ErrConfigNotFound возвращается, когда указанная конфигурация слотов не найдена
	ErrConfigNotFound = errors.New("update_appointment: time slot configuration not found")

	// ErrNoActiveConfig возвращается, когда активной конфигурации нет
	ErrNoActiveConfig = errors.New("update_appointment: no active time slot configuration")

	// ErrInvalidSlot возвращается, когда слота нет в конфигурации или это перерыв
	ErrInvalidSlot = errors.New("update_appointment: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда новый слот уже занят
	ErrSlotAlreadyBooked = errors.New("update_appointment: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

// wrapTxError оставляет ошибки usecase как есть, остальное считается внутренней ошибкой
func wrapTxError(err error) error {
	for _, known := range []error{
		ErrInvalidInput, ErrAppointmentNotFound, ErrNotEditable, ErrConfigNotFound,
		ErrNoActiveConfig, ErrInvalidSlot, ErrSlotAlreadyBooked, ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
