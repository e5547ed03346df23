package stage_order

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
)

// validateRequest валидирует черновик записи, позиции и параметры оплаты
func validateRequest(req *Request) error {
	a := req.Appointment
	if err := domain.ValidateEmail(a.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateName(a.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidatePhone(a.Phone); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := a.Date.Validate(); err != nil {
		return fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	if a.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if a.TimeSlotID != nil && *a.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotId must be positive", ErrInvalidInput)
	}
	if err := domain.ValidateNotes(&a.Notes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	if len(req.Items) > domain.MaxItemsPerOrder {
		return fmt.Errorf("%w: at most %d items per order", ErrInvalidInput, domain.MaxItemsPerOrder)
	}
	for i, item := range req.Items {
		if !item.Kind.IsValid() {
			return fmt.Errorf("%w: items[%d]: unknown kind %q", ErrInvalidInput, i, item.Kind)
		}
		if item.RefID <= 0 {
			return fmt.Errorf("%w: items[%d]: id must be positive", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d]: quantity must be positive", ErrInvalidInput, i)
		}
	}

	if !req.PaymentOption.IsValid() {
		return fmt.Errorf("%w: paymentOption must be full or partial", ErrInvalidInput)
	}
	if req.Charges.IsNegative() {
		return fmt.Errorf("%w: charges must not be negative", ErrInvalidInput)
	}
	if !req.PaymentAmount.IsPositive() {
		return fmt.Errorf("%w: paymentAmount must be positive", ErrInvalidInput)
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
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
