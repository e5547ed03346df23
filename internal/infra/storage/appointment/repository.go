package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/pgerrors"
	"github.com/m04kA/SMC-TyreService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

const (
	table = "appointments"

	// activeSlotIndex частичный уникальный индекс (appointment_date, slot_id) по активным записям
	activeSlotIndex = "appointments_active_slot_uidx"
)

var columns = []string{
	"id",
	"name",
	"phone",
	"email",
	"appointment_date",
	"slot_id",
	"time_slot_id",
	"time_label",
	"status",
	"employee_id",
	"notes",
	"is_deleted",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если слот уже занят активной записью, уникальный индекс отклонит вставку: возвращается ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(a).
		Suffix("RETURNING id, is_deleted, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = scanInserted(executor.QueryRowContext(ctx, query, args...), a)
	if pgerrors.IsUniqueViolationOn(err, activeSlotIndex) {
		return nil, fmt.Errorf("%w: Create - date=%s slot=%s: %w", ErrSlotTaken, a.Date, a.SlotID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return a, nil
}

// CreateIfSlotFree вставляет запись, только если слот свободен, не прерывая транзакцию.
// Занятый слот: ErrSlotTaken, транзакция остается пригодной для следующих запросов.
func (r *Repository) CreateIfSlotFree(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(a).
		Suffix("ON CONFLICT (appointment_date, slot_id) " +
			"WHERE NOT is_deleted AND status IN ('booked', 'reserved', 'confirmed') DO NOTHING " +
			"RETURNING id, is_deleted, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfSlotFree - build insert query: %v", ErrBuildQuery, err)
	}

	err = scanInserted(executor.QueryRowContext(ctx, query, args...), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: CreateIfSlotFree - date=%s slot=%s", ErrSlotTaken, a.Date, a.SlotID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfSlotFree - execute insert: %w", ErrExecQuery, err)
	}

	return a, nil
}

func insertBuilder(a *domain.Appointment) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(
			"name",
			"phone",
			"email",
			"appointment_date",
			"slot_id",
			"time_slot_id",
			"time_label",
			"status",
			"employee_id",
			"notes",
		).
		Values(
			a.Name,
			a.Phone,
			a.Email,
			a.Date,
			a.SlotID,
			a.TimeSlotID,
			a.Time,
			a.Status,
			a.EmployeeID,
			a.Notes,
		)
}

func scanInserted(row *sql.Row, a *domain.Appointment) error {
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&a.ID, &a.IsDeleted, &createdAt, &updatedAt); err != nil {
		return err
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	return nil
}

// GetByID получает запись по ID.
// В транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// FindActiveBySlot ищет активную (не удалённую, статус из ActiveStatuses) запись на дату и слот.
// excludeID исключает редактируемую запись.
func (r *Repository) FindActiveBySlot(ctx context.Context, date types.Date, slotID string, excludeID *int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"slot_id":          slotID,
			"is_deleted":       false,
			"status":           activeStatusStrings(),
		}).
		Limit(1)

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// ListActiveSlotIDs возвращает идентификаторы слотов, занятых активными записями на дату
func (r *Repository) ListActiveSlotIDs(ctx context.Context, date types.Date) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id").
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"is_deleted":       false,
			"status":           activeStatusStrings(),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]string, 0)
	for rows.Next() {
		var slotID string
		if err := rows.Scan(&slotID); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSlotIDs - scan slot_id: %w", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, slotID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - rows error: %w", ErrScanRow, err)
	}

	return slotIDs, nil
}

// List возвращает записи, опционально за одну дату.
// Удалённые записи включаются только по флагу IncludeDeleted.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"appointment_date": *filter.Date}).
			OrderBy("time_label ASC", "id ASC")
	} else {
		builder = builder.OrderBy("appointment_date DESC", "time_label ASC", "id ASC")
	}

	if !filter.IncludeDeleted {
		builder = builder.Where(squirrel.Eq{"is_deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// Update применяет частичное обновление и возвращает запись целиком.
// Перенос на занятый слот отклоняется уникальным индексом: ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, id int64, upd domain.AppointmentUpdate) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.Date != nil {
		builder = builder.Set("appointment_date", *upd.Date)
	}
	if upd.SlotID != nil {
		builder = builder.Set("slot_id", *upd.SlotID)
	}
	if upd.TimeSlotID != nil {
		builder = builder.Set("time_slot_id", *upd.TimeSlotID)
	}
	if upd.Time != nil {
		builder = builder.Set("time_label", *upd.Time)
	}
	if upd.EmployeeID != nil {
		builder = builder.Set("employee_id", *upd.EmployeeID)
	}
	if upd.Notes != nil {
		builder = builder.Set("notes", *upd.Notes)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if pgerrors.IsUniqueViolationOn(err, activeSlotIndex) {
		return nil, fmt.Errorf("%w: Update - id=%d: %w", ErrSlotTaken, id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return a, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolationOn(err, activeSlotIndex) {
		return fmt.Errorf("%w: UpdateStatus - id=%d: %w", ErrSlotTaken, id, err)
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// SoftDelete помечает запись удалённой и отменённой; слот освобождается
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_deleted", true).
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a                    domain.Appointment
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Phone,
		&a.Email,
		&a.Date,
		&a.SlotID,
		&a.TimeSlotID,
		&a.Time,
		&a.Status,
		&a.EmployeeID,
		&a.Notes,
		&a.IsDeleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
