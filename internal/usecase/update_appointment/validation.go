package update_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// validateRequest валидирует переданные поля
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if req.Name != nil {
		if err := domain.ValidateName(*req.Name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.Phone != nil {
		if err := domain.ValidatePhone(*req.Phone); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.Email != nil {
		if err := domain.ValidateEmail(*req.Email); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.Date != nil {
		if err := req.Date.Validate(); err != nil {
			return fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
		}
	}
	if req.SlotID != nil && *req.SlotID == "" {
		return fmt.Errorf("%w: slotId must not be empty", ErrInvalidInput)
	}
	if req.TimeSlotID != nil && *req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotId must be positive", ErrInvalidInput)
	}
	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId must be positive", ErrInvalidInput)
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
