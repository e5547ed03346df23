package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/pgerrors"
	"github.com/m04kA/SMC-TyreService/pkg/txmanager"
)

const (
	getByIDForUpdate = `SELECT .+ FROM appointments WHERE id = \$1 FOR UPDATE`
	findBySlotQuery  = `SELECT .+ FROM appointments WHERE .*appointment_date = \$1.* LIMIT 1 FOR UPDATE`
)

var serializationFailure = &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

func newMockRepo(t *testing.T, maxRetries int) (*Repository, *txmanager.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	tm := txmanager.NewTransactionManager(wrapped, txmanager.WithMaxRetries(maxRetries), txmanager.WithBackoff(0))
	return NewRepository(wrapped), tm, mock
}

func appointmentRow(id int64) *sqlmock.Rows {
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		id, "Jane Doe", "+66812345678", "jane@example.com",
		time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), "slot_3", int64(1), "11:00 - 12:00",
		"booked", nil, nil, false, now, now,
	)
}

func TestGetByID_RetriedAfterSerializationFailure(t *testing.T) {
	repo, tm, mock := newMockRepo(t, 2)

	mock.ExpectBegin()
	mock.ExpectQuery(getByIDForUpdate).WillReturnError(serializationFailure)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(getByIDForUpdate).WillReturnRows(appointmentRow(7))
	mock.ExpectCommit()

	attempts := 0
	var got *domain.Appointment
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		a, err := repo.GetByID(ctx, 7)
		got = a
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "2030-01-15", got.Date.String())
	assert.Equal(t, domain.StatusBooked, got.Status)
	assert.Nil(t, got.EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockingReads_KeepDriverError(t *testing.T) {
	tests := []struct {
		name  string
		query string
		call  func(ctx context.Context, r *Repository) error
	}{
		{
			name:  "GetByID",
			query: getByIDForUpdate,
			call: func(ctx context.Context, r *Repository) error {
				_, err := r.GetByID(ctx, 7)
				return err
			},
		},
		{
			name:  "FindActiveBySlot",
			query: findBySlotQuery,
			call: func(ctx context.Context, r *Repository) error {
				_, err := r.FindActiveBySlot(ctx, "2030-01-15", "slot_3", nil)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tm, mock := newMockRepo(t, 0)

			mock.ExpectBegin()
			mock.ExpectQuery(tt.query).WillReturnError(serializationFailure)
			mock.ExpectRollback()

			var inner error
			err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
				inner = tt.call(ctx, repo)
				return inner
			})

			require.Error(t, err)
			assert.True(t, errors.Is(inner, ErrScanRow))
			assert.True(t, pgerrors.IsRetryable(inner))
			assert.ErrorIs(t, err, txmanager.ErrRetriesExhausted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetByID_NotFoundOutsideTransaction(t *testing.T) {
	repo, _, mock := newMockRepo(t, 0)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1$`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfSlotFree(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO appointments") + `.+` +
		regexp.QuoteMeta("ON CONFLICT (appointment_date, slot_id) WHERE NOT is_deleted AND status IN ('booked', 'reserved', 'confirmed') DO NOTHING RETURNING id")

	draft := func() *domain.Appointment {
		return &domain.Appointment{
			Name:       "Jane Doe",
			Phone:      "+66812345678",
			Email:      "jane@example.com",
			Date:       "2030-01-15",
			SlotID:     "slot_3",
			TimeSlotID: 1,
			Time:       "11:00 - 12:00",
			Status:     domain.StatusConfirmed,
		}
	}

	t.Run("free slot", func(t *testing.T) {
		repo, _, mock := newMockRepo(t, 0)
		now := time.Now()
		mock.ExpectQuery(insert).
			WillReturnRows(sqlmock.NewRows([]string{"id", "is_deleted", "created_at", "updated_at"}).
				AddRow(int64(12), false, now, now))

		created, err := repo.CreateIfSlotFree(context.Background(), draft())

		require.NoError(t, err)
		assert.Equal(t, int64(12), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken slot", func(t *testing.T) {
		repo, _, mock := newMockRepo(t, 0)
		mock.ExpectQuery(insert).
			WillReturnRows(sqlmock.NewRows([]string{"id", "is_deleted", "created_at", "updated_at"}))

		_, err := repo.CreateIfSlotFree(context.Background(), draft())

		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreate_UniqueViolationIsSlotTaken(t *testing.T) {
	repo, _, mock := newMockRepo(t, 0)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: activeSlotIndex})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		Name: "Jane", Email: "jane@example.com", Date: "2030-01-15", SlotID: "slot_3",
		TimeSlotID: 1, Time: "11:00 - 12:00", Status: domain.StatusBooked,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
