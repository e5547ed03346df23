package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		input   TimeString
		wantErr bool
	}{
		{input: "09:00"},
		{input: "00:00"},
		{input: "23:59"},
		{input: "9:00", wantErr: true},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "10:00:00", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{name: "nil", src: nil, want: ""},
		{name: "TIME column text", src: "10:00:00", want: "10:00"},
		{name: "already short", src: "10:30", want: "10:30"},
		{name: "bytes", src: []byte("18:45:00"), want: "18:45"},
		{name: "time value drops seconds", src: time.Date(0, 1, 1, 11, 15, 42, 0, time.UTC), want: "11:15"},
		{name: "unsupported type", src: 3.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := TimeString("01:00")
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    TimeString
		wantErr bool
	}{
		{minutes: 0, want: "00:00"},
		{minutes: 545, want: "09:05"},
		{minutes: MinutesPerDay, want: "24:00"},
		{minutes: MinutesPerDay + 1, wantErr: true},
		{minutes: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromMinutes(tt.minutes)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrTimeOverflow, "minutes=%d", tt.minutes)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("noon").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	next, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)

	end, err := TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)

	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("12:00").IsAfter("11:59"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}
