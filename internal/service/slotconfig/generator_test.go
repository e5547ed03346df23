package slotconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

func slotsAsStrings(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.SlotID + " " + s.Label()
	}
	return out
}

func TestGenerateSlots_TilesWorkingHoursWithoutBreak(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		duration int
		want     int
	}{
		{"exact fit", "09:00", "17:00", 60, 8},
		{"remainder dropped", "09:00", "10:40", 30, 3},
		{"quarter hours", "08:15", "09:15", 15, 4},
		{"single slot", "09:00", "09:45", 45, 1},
		{"too long", "09:00", "09:30", 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.start, tt.end, nil, tt.duration)
			require.NoError(t, err)
			require.Len(t, slots, tt.want)

			endMin, _ := tt.end.Minutes()
			cursor, _ := tt.start.Minutes()
			for _, s := range slots {
				from, _ := s.StartTime.Minutes()
				to, _ := s.EndTime.Minutes()

				assert.False(t, s.IsBreak)
				assert.Equal(t, cursor, from, "slots must be consecutive")
				assert.Equal(t, tt.duration, to-from)
				assert.LessOrEqual(t, to, endMin)
				cursor = to
			}
		})
	}
}

func TestGenerateSlots_BreakCollapsesIntoOneEntry(t *testing.T) {
	brk := &domain.BreakTime{Start: "10:00", End: "10:20"}

	slots, err := GenerateSlots("09:00", "12:00", brk, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"slot_1 09:00 - 09:30",
		"slot_2 09:30 - 10:00",
		"break_3 10:00 - 10:20",
		"slot_4 10:20 - 10:50",
		"slot_5 10:50 - 11:20",
		"slot_6 11:20 - 11:50",
	}, slotsAsStrings(slots))
	assert.True(t, slots[2].IsBreak)
}

func TestGenerateSlots_WorkingDayWithLunch(t *testing.T) {
	brk := &domain.BreakTime{Start: "13:00", End: "13:30"}

	slots, err := GenerateSlots("09:00", "17:00", brk, 60)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"slot_1 09:00 - 10:00",
		"slot_2 10:00 - 11:00",
		"slot_3 11:00 - 12:00",
		"slot_4 12:00 - 13:00",
		"break_5 13:00 - 13:30",
		"slot_6 13:30 - 14:30",
		"slot_7 14:30 - 15:30",
		"slot_8 15:30 - 16:30",
	}, slotsAsStrings(slots))
}

func TestGenerateSlots_BreakSpanningSeveralSteps(t *testing.T) {
	brk := &domain.BreakTime{Start: "10:00", End: "11:30"}

	slots, err := GenerateSlots("09:00", "12:00", brk, 30)
	require.NoError(t, err)

	breaks := 0
	for _, s := range slots {
		if s.IsBreak {
			breaks++
		}
	}
	assert.Equal(t, 1, breaks)
	assert.Equal(t, []string{
		"slot_1 09:00 - 09:30",
		"slot_2 09:30 - 10:00",
		"break_3 10:00 - 11:30",
		"slot_4 11:30 - 12:00",
	}, slotsAsStrings(slots))
}

func TestGenerateSlots_MalformedTime(t *testing.T) {
	_, err := GenerateSlots("9am", "17:00", nil, 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = GenerateSlots("09:00", "17:00", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
