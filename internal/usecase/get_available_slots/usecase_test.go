package get_available_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/internal/service/slotconfig"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
	"github.com/m04kA/SMC-TyreService/pkg/ptr"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

type fakeApptRepo struct {
	booked map[types.Date][]string
	err    error
}

func (r *fakeApptRepo) ListActiveSlotIDs(_ context.Context, date types.Date) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.booked[date], nil
}

type fakeResolver struct {
	res booking_guard.Resolution
	err error
}

func (r *fakeResolver) ResolveConfig(_ context.Context, _ *int64) (booking_guard.Resolution, error) {
	return r.res, r.err
}

func scenarioConfig(t *testing.T) *domain.TimeSlotConfig {
	t.Helper()
	brk := &domain.BreakTime{Start: "13:00", End: "13:30"}
	slots, err := slotconfig.GenerateSlots("09:00", "17:00", brk, 60)
	require.NoError(t, err)
	return &domain.TimeSlotConfig{
		ID: 3, StartTime: "09:00", EndTime: "17:00", BreakTime: brk, Duration: 60, GeneratedSlots: slots,
	}
}

func TestExecute_EmptyDate(t *testing.T) {
	cfg := scenarioConfig(t)
	uc := NewUseCase(
		&fakeApptRepo{},
		&fakeResolver{res: booking_guard.Resolution{Kind: booking_guard.Found, Config: cfg}},
		logger.NewNop(),
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-10"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TimeSlotID)
	require.Len(t, resp.Slots, 8)

	for _, s := range resp.Slots {
		if s.IsBreak {
			assert.Equal(t, "break_5", s.SlotID)
			assert.Equal(t, types.TimeString("13:00"), s.StartTime)
			assert.False(t, s.IsAvailable)
			continue
		}
		assert.True(t, s.IsAvailable, s.SlotID)
	}
}

func TestExecute_BookedSlotsUnavailable(t *testing.T) {
	cfg := scenarioConfig(t)
	uc := NewUseCase(
		&fakeApptRepo{booked: map[types.Date][]string{"2025-06-10": {"slot_1", "slot_6"}}},
		&fakeResolver{res: booking_guard.Resolution{Kind: booking_guard.Found, Config: cfg}},
		logger.NewNop(),
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-10"})
	require.NoError(t, err)

	available := map[string]bool{}
	for _, s := range resp.Slots {
		available[s.SlotID] = s.IsAvailable
	}
	assert.False(t, available["slot_1"])
	assert.False(t, available["slot_6"])
	assert.False(t, available["break_5"])
	assert.True(t, available["slot_2"])

	other, err := uc.Execute(context.Background(), &Request{Date: "2025-06-11"})
	require.NoError(t, err)
	assert.True(t, other.Slots[0].IsAvailable)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		resolver *fakeResolver
		repo     *fakeApptRepo
		wantErr  error
	}{
		{
			name:     "missing date",
			req:      &Request{},
			resolver: &fakeResolver{},
			repo:     &fakeApptRepo{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "bad date",
			req:      &Request{Date: "2025-13-40"},
			resolver: &fakeResolver{},
			repo:     &fakeApptRepo{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "no active configuration",
			req:      &Request{Date: "2025-06-10"},
			resolver: &fakeResolver{res: booking_guard.Resolution{Kind: booking_guard.NoActiveConfiguration}},
			repo:     &fakeApptRepo{},
			wantErr:  ErrNoActiveConfig,
		},
		{
			name:     "explicit configuration missing",
			req:      &Request{Date: "2025-06-10", TimeSlotID: ptr.Ptr(int64(9))},
			resolver: &fakeResolver{err: booking_guard.ErrConfigNotFound},
			repo:     &fakeApptRepo{},
			wantErr:  ErrConfigNotFound,
		},
		{
			name:     "repository failure",
			req:      &Request{Date: "2025-06-10"},
			resolver: &fakeResolver{res: booking_guard.Resolution{Kind: booking_guard.Found, Config: &domain.TimeSlotConfig{ID: 1}}},
			repo:     &fakeApptRepo{err: errors.New("db down")},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, tt.resolver, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
