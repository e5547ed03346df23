package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// StagedAppointment is the appointment draft captured before payment
type StagedAppointment struct {
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Date       types.Date `json:"date"`
	SlotID     string     `json:"slotId"`
	TimeSlotID *int64     `json:"timeSlotId,omitempty"`
	Time       string     `json:"time,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// StagedItem references a catalog entry; prices are resolved at payment time
type StagedItem struct {
	Kind     ItemKind `json:"kind"`
	RefID    int64    `json:"refId"`
	Quantity int      `json:"quantity"`
}

// StagedOrderPayload is everything needed to create the order after payment
type StagedOrderPayload struct {
	Appointment   StagedAppointment `json:"appointment"`
	Items         []StagedItem      `json:"items"`
	PaymentOption PaymentOption     `json:"paymentOption"`
	Charges       decimal.Decimal   `json:"charges"`
	PaymentAmount decimal.Decimal   `json:"paymentAmount"`
}

// StagedOrder is a short-lived pre-payment order snapshot
type StagedOrder struct {
	ID        uuid.UUID
	Payload   StagedOrderPayload
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true once the retention window has passed
func (s *StagedOrder) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
