package domain

import (
	"time"

	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusReserved  AppointmentStatus = "reserved"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// transitions lists the statuses reachable from each status.
// cancelled is terminal.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusBooked:    {StatusConfirmed, StatusCancelled},
	StatusReserved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusReserved, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true if the status holds its slot
func (s AppointmentStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a customer's claim on one slot for one date
type Appointment struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Date       types.Date
	SlotID     string
	TimeSlotID int64  // configuration the slot was booked against
	Time       string // "HH:MM - HH:MM" label, denormalized from the slot
	Status     AppointmentStatus
	EmployeeID *int64
	Notes      *string
	IsDeleted  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment currently occupies its slot
func (a *Appointment) IsActive() bool {
	return !a.IsDeleted && a.Status.IsActive()
}

// CanBeEdited returns true if contact, date or slot changes are still allowed
func (a *Appointment) CanBeEdited() bool {
	return !a.IsDeleted && a.Status != StatusCancelled
}

// AppointmentUpdate holds a partial update; nil fields are left unchanged
type AppointmentUpdate struct {
	Name       *string
	Phone      *string
	Email      *string
	Date       *types.Date
	SlotID     *string
	TimeSlotID *int64
	Time       *string
	EmployeeID *int64
	Notes      *string
}

// AppointmentFilter filters appointments by date
type AppointmentFilter struct {
	Date           *types.Date
	IncludeDeleted bool
}
