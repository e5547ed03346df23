package domain

import (
	"time"

	"github.com/m04kA/SMC-TyreService/pkg/types"
)

// BreakTime is the daily break interval [Start, End)
type BreakTime struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Slot is one generated interval, bookable or a break.
// Identifiers are positional and change when the configuration regenerates.
type Slot struct {
	SlotID    string           `json:"slotId"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	IsBreak   bool             `json:"isBreak"`
}

// Label returns the "HH:MM - HH:MM" representation stored on appointments
func (s Slot) Label() string {
	return s.StartTime.String() + " - " + s.EndTime.String()
}

// TimeSlotConfig is the singleton working-hours configuration
type TimeSlotConfig struct {
	ID             int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	BreakTime      *BreakTime
	Duration       int // minutes
	GeneratedSlots []Slot
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FindSlot looks a slot up by its identifier
func (c *TimeSlotConfig) FindSlot(slotID string) (Slot, bool) {
	for _, s := range c.GeneratedSlots {
		if s.SlotID == slotID {
			return s, true
		}
	}
	return Slot{}, false
}

// AvailableSlot is a generated slot with its availability on a given date
type AvailableSlot struct {
	Slot
	IsAvailable bool
}
