package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TyreService/internal/service/appointments/models"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
	"github.com/m04kA/SMC-TyreService/pkg/ptr"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

type fakeApptRepo struct {
	items map[int64]*domain.Appointment
}

func (r *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApptRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.items {
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if !filter.IncludeDeleted && a.IsDeleted {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.items[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApptRepo) SoftDelete(_ context.Context, id int64) error {
	a, ok := r.items[id]
	if !ok || a.IsDeleted {
		return apptRepo.ErrAppointmentNotFound
	}
	a.IsDeleted = true
	a.Status = domain.StatusCancelled
	return nil
}

type fakeOrderRepo struct {
	paid map[int64]bool
	err  error
}

func (r *fakeOrderRepo) HasPaidPaymentForAppointment(_ context.Context, appointmentID int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.paid[appointmentID], nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(items ...*domain.Appointment) (*Service, *fakeApptRepo, *fakeOrderRepo) {
	repo := &fakeApptRepo{items: make(map[int64]*domain.Appointment)}
	for _, a := range items {
		repo.items[a.ID] = a
	}
	orders := &fakeOrderRepo{paid: make(map[int64]bool)}
	return NewService(repo, orders, passthroughTx{}, logger.NewNop()), repo, orders
}

func appointment(id int64, date string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		Name:       "Jane Doe",
		Phone:      "+66 81 234 5678",
		Email:      "jane@example.com",
		Date:       types.Date(date),
		SlotID:     "slot_1",
		TimeSlotID: 1,
		Time:       "09:00 - 10:00",
		Status:     status,
	}
}

func TestGetByID(t *testing.T) {
	svc, _, _ := newTestService(appointment(1, "2030-01-15", domain.StatusBooked))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, "2030-01-15", resp.Date)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListByDate(t *testing.T) {
	deleted := appointment(3, "2030-01-15", domain.StatusCancelled)
	deleted.IsDeleted = true
	svc, _, _ := newTestService(
		appointment(1, "2030-01-15", domain.StatusBooked),
		appointment(2, "2030-01-16", domain.StatusConfirmed),
		deleted,
	)

	resp, err := svc.ListByDate(context.Background(), &models.ListRequest{Date: ptr.Ptr("2030-01-15")})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.ListByDate(context.Background(), &models.ListRequest{Date: ptr.Ptr("2030-01-15"), IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.ListByDate(context.Background(), &models.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	_, err = svc.ListByDate(context.Background(), &models.ListRequest{Date: ptr.Ptr("15/01/2030")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.AppointmentStatus
		to         string
		wantStatus string
		wantErr    error
	}{
		{name: "booked to confirmed", from: domain.StatusBooked, to: "confirmed", wantStatus: "confirmed"},
		{name: "reserved to confirmed", from: domain.StatusReserved, to: "confirmed", wantStatus: "confirmed"},
		{name: "same status is a no-op", from: domain.StatusConfirmed, to: "confirmed", wantStatus: "confirmed"},
		{name: "confirmed back to booked", from: domain.StatusConfirmed, to: "booked", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusBooked, to: "done", wantErr: ErrInvalidInput},
		{name: "cancel via status", from: domain.StatusBooked, to: "cancelled", wantStatus: "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(appointment(1, "2030-01-15", tt.from))

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestCancel_RefusedWhenOrderPaid(t *testing.T) {
	svc, repo, orders := newTestService(appointment(7, "2030-01-15", domain.StatusConfirmed))
	orders.paid[7] = true

	err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPaymentExists)

	stored := repo.items[7]
	assert.False(t, stored.IsDeleted)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestCancel_FreesSlot(t *testing.T) {
	svc, repo, _ := newTestService(appointment(7, "2030-01-15", domain.StatusBooked))

	require.NoError(t, svc.Cancel(context.Background(), 7))
	assert.True(t, repo.items[7].IsDeleted)
	assert.Equal(t, domain.StatusCancelled, repo.items[7].Status)

	err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_OrderRepositoryError(t *testing.T) {
	svc, repo, orders := newTestService(appointment(7, "2030-01-15", domain.StatusBooked))
	orders.err = errors.New("connection reset")

	err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, repo.items[7].IsDeleted)
}

func TestConfirm(t *testing.T) {
	svc, repo, _ := newTestService(
		appointment(1, "2030-01-15", domain.StatusBooked),
		appointment(2, "2030-01-15", domain.StatusConfirmed),
		appointment(3, "2030-01-15", domain.StatusCancelled),
	)

	require.NoError(t, svc.Confirm(context.Background(), 1))
	assert.Equal(t, domain.StatusConfirmed, repo.items[1].Status)

	require.NoError(t, svc.Confirm(context.Background(), 2))

	assert.ErrorIs(t, svc.Confirm(context.Background(), 3), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Confirm(context.Background(), 99), ErrAppointmentNotFound)
}
