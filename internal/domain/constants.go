package domain

import "time"

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNotesLength         = 500
	MaxNameLength          = 200
	MaxItemsPerOrder       = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultStagedOrderTTL is how long a staged order survives without payment
const DefaultStagedOrderTTL = time.Hour

// ActiveStatuses are the statuses that hold a (date, slot) pair.
// At most one non-deleted appointment per pair may be in one of them.
var ActiveStatuses = []AppointmentStatus{
	StatusBooked,
	StatusReserved,
	StatusConfirmed,
}
