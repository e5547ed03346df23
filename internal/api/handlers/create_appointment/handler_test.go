package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-TyreService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
)

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{"name":"Jane Doe","phone":"+66 81 234 5678","email":"jane@example.com","date":"2030-01-15","slotId":"slot_3"}`

func TestHandle(t *testing.T) {
	created := &createAppointment.Response{
		ID:         7,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Date:       "2030-01-15",
		SlotID:     "slot_3",
		TimeSlotID: 1,
		Time:       "11:00 - 12:00",
		Status:     "booked",
		CreatedAt:  time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "created", body: validBody, wantStatus: http.StatusCreated},
		{name: "slot already booked", body: validBody, ucErr: createAppointment.ErrSlotAlreadyBooked, wantStatus: http.StatusConflict},
		{name: "invalid slot", body: validBody, ucErr: createAppointment.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "no active config", body: validBody, ucErr: createAppointment.ErrNoActiveConfig, wantStatus: http.StatusNotFound},
		{name: "internal error", body: validBody, ucErr: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "malformed json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"name":"x","coupon":"FREE"}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: strings.Replace(validBody, "2030-01-15", "15/01/2030", 1), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: created, err: tt.ucErr}
			if tt.ucErr != nil {
				uc.resp = nil
			}
			h := NewHandler(uc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			require.NotNil(t, uc.got)
			assert.Equal(t, "slot_3", uc.got.SlotID)
			assert.Nil(t, uc.got.TimeSlotID)

			var body AppointmentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, int64(7), body.ID)
			assert.Equal(t, "11:00 - 12:00", body.Time)
			assert.Equal(t, "2030-01-15", body.Date)
		})
	}
}
