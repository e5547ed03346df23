package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := domain.ValidateName(req.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidatePhone(req.Phone); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateEmail(req.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if req.TimeSlotID != nil && *req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotId must be positive", ErrInvalidInput)
	}
	if err := domain.ValidateNotes(req.Notes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// mapGuardError переводит ошибки проверки слота в ошибки usecase
func mapGuardError(err error) error {
	switch {
	case errors.Is(err, booking_guard.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, booking_guard.ErrConfigNotFound):
		return ErrConfigNotFound
	case errors.Is(err, booking_guard.ErrNoActiveConfig):
		return ErrNoActiveConfig
	case errors.Is(err, booking_guard.ErrInvalidSlot):
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	case errors.Is(err, booking_guard.ErrSlotAlreadyBooked):
		return ErrSlotAlreadyBooked
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
