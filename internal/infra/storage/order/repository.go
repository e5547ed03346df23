package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/pgerrors"
	"github.com/m04kA/SMC-TyreService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TyreService/pkg/ptr"
)

const (
	table = "orders"

	sessionConstraint = "orders_payment_session_id_key"
)

var columns = []string{
	"id",
	"items",
	"subtotal",
	"charges",
	"tax_name",
	"tax_percentage",
	"tax_amount",
	"total",
	"appointment_id",
	"appointment",
	"customer",
	"payments",
	"payment_session_id",
	"slot_conflict",
	"created_at",
	"updated_at",
}

// Repository репозиторий заказов.
// Позиции, снимок записи, клиент и платежи хранятся в JSONB.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заказ.
// payment_session_id уникален: повторная доставка вебхука получает ErrDuplicateSession.
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	doc, err := encodeDocuments(o)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"items",
			"subtotal",
			"charges",
			"tax_name",
			"tax_percentage",
			"tax_amount",
			"total",
			"appointment_id",
			"appointment",
			"customer",
			"payments",
			"payment_session_id",
			"slot_conflict",
		).
		Values(
			doc.items,
			o.Subtotal,
			o.Charges,
			o.TaxName,
			o.TaxPercentage,
			o.TaxAmount,
			o.Total,
			o.AppointmentID,
			doc.appointment,
			doc.customer,
			doc.payments,
			o.PaymentSessionID,
			o.SlotConflict,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt, &updatedAt)
	if pgerrors.IsUniqueViolationOn(err, sessionConstraint) {
		return nil, fmt.Errorf("%w: Create - session=%s: %w", ErrDuplicateSession, ptr.Value(o.PaymentSessionID), err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByID получает заказ по ID.
// В транзакции строка блокируется (FOR UPDATE), чтобы параллельные вебхуки шли по очереди.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetBySessionID ищет заказ по идентификатору платёжной сессии
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	return r.getOne(ctx, "GetBySessionID", squirrel.Eq{"payment_session_id": sessionID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	o, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
	}

	return o, nil
}

// UpdatePayments перезаписывает платёжные записи заказа
func (r *Repository) UpdatePayments(ctx context.Context, id int64, payments []domain.Payment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(payments)
	if err != nil {
		return fmt.Errorf("%w: UpdatePayments - marshal payments: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("payments", string(raw)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePayments - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePayments - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePayments - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// HasPaidPaymentForAppointment проверяет, есть ли у заказов записи хотя бы один платёж с суммой > 0
func (r *Repository) HasPaidPaymentForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("orders o, jsonb_array_elements(o.payments) AS p").
		Where(squirrel.Eq{"o.appointment_id": appointmentID}).
		Where("(p->>'amount')::numeric > 0").
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasPaidPaymentForAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasPaidPaymentForAppointment - execute query: %w", ErrExecQuery, err)
	}

	return exists, nil
}

type documents struct {
	items       string
	appointment sql.NullString
	customer    string
	payments    string
}

func encodeDocuments(o *domain.Order) (*documents, error) {
	var doc documents

	items := o.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("items: %v", err)
	}
	doc.items = string(raw)

	if o.Appointment != nil {
		raw, err = json.Marshal(o.Appointment)
		if err != nil {
			return nil, fmt.Errorf("appointment: %v", err)
		}
		doc.appointment = sql.NullString{String: string(raw), Valid: true}
	}

	raw, err = json.Marshal(o.Customer)
	if err != nil {
		return nil, fmt.Errorf("customer: %v", err)
	}
	doc.customer = string(raw)

	payments := o.Payments
	if payments == nil {
		payments = []domain.Payment{}
	}
	raw, err = json.Marshal(payments)
	if err != nil {
		return nil, fmt.Errorf("payments: %v", err)
	}
	doc.payments = string(raw)

	return &doc, nil
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	var (
		o                         domain.Order
		items, customer, payments []byte
		appointment               []byte
		sessionID                 sql.NullString
		appointmentID             sql.NullInt64
		createdAt, updatedAt      sql.NullTime
	)

	err := row.Scan(
		&o.ID,
		&items,
		&o.Subtotal,
		&o.Charges,
		&o.TaxName,
		&o.TaxPercentage,
		&o.TaxAmount,
		&o.Total,
		&appointmentID,
		&appointment,
		&customer,
		&payments,
		&sessionID,
		&o.SlotConflict,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("%w: items: %v", ErrEncode, err)
	}
	if len(appointment) > 0 {
		o.Appointment = &domain.AppointmentSnapshot{}
		if err := json.Unmarshal(appointment, o.Appointment); err != nil {
			return nil, fmt.Errorf("%w: appointment: %v", ErrEncode, err)
		}
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, fmt.Errorf("%w: customer: %v", ErrEncode, err)
	}
	if err := json.Unmarshal(payments, &o.Payments); err != nil {
		return nil, fmt.Errorf("%w: payments: %v", ErrEncode, err)
	}

	if appointmentID.Valid {
		o.AppointmentID = &appointmentID.Int64
	}
	if sessionID.Valid {
		o.PaymentSessionID = &sessionID.String
	}
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
