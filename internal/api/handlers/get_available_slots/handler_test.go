package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TyreService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:       req.Date,
		TimeSlotID: 1,
		Slots: []domain.AvailableSlot{
			{Slot: domain.Slot{SlotID: "slot_1", StartTime: "09:00", EndTime: "10:00"}, IsAvailable: true},
			{Slot: domain.Slot{SlotID: "break_2", StartTime: "10:00", EndTime: "10:30", IsBreak: true}},
		},
	}, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots/available?date=2030-01-15&timeSlotId=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.TimeSlotID)
	assert.Equal(t, int64(1), *uc.got.TimeSlotID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2030-01-15", body.Date)
	require.Len(t, body.Slots, 2)
	assert.True(t, body.Slots[0].IsAvailable)
	assert.True(t, body.Slots[1].IsBreak)
	assert.False(t, body.Slots[1].IsAvailable)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{name: "missing date", url: "/api/v1/slots/available", wantStatus: http.StatusBadRequest},
		{name: "malformed date", url: "/api/v1/slots/available?date=2030-13-40", wantStatus: http.StatusBadRequest},
		{name: "malformed config id", url: "/api/v1/slots/available?date=2030-01-15&timeSlotId=x", wantStatus: http.StatusBadRequest},
		{name: "no active config", url: "/api/v1/slots/available?date=2030-01-15", err: getAvailableSlots.ErrNoActiveConfig, wantStatus: http.StatusNotFound},
		{name: "unknown config", url: "/api/v1/slots/available?date=2030-01-15&timeSlotId=9", err: getAvailableSlots.ErrConfigNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
