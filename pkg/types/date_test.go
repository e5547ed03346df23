package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid", input: "2024-06-10", want: "2024-06-10"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "non-leap day", input: "2023-02-29", wantErr: true},
		{name: "day out of range", input: "2024-06-31", wantErr: true},
		{name: "missing zero padding", input: "2024-6-1", wantErr: true},
		{name: "timestamp", input: "2024-06-10T10:00:00Z", wantErr: true},
		{name: "other layout", input: "10/06/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestDate_Scan(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		name    string
		src     interface{}
		want    Date
		wantErr bool
	}{
		{name: "nil", src: nil, want: ""},
		{name: "time from DATE column", src: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), want: "2024-06-10"},
		{name: "time keeps its own location", src: time.Date(2024, 6, 10, 23, 30, 0, 0, bangkok), want: "2024-06-10"},
		{name: "plain string", src: "2024-06-10", want: "2024-06-10"},
		{name: "string with timestamp suffix", src: "2024-06-10T00:00:00Z", want: "2024-06-10"},
		{name: "bytes", src: []byte("2024-06-10 00:00:00+00"), want: "2024-06-10"},
		{name: "unsupported type", src: int64(20240610), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Date("1999-01-01")
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := Date("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Date("2024-06-10").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", v)
}

func TestDate_Time(t *testing.T) {
	got, err := Date("2024-06-10").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = Date("june").Time()
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	assert.Equal(t, Date("2024-06-10"), NewDate(got))
}
