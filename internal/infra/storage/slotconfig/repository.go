package slotconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

const table = "time_slot_configs"

var columns = []string{
	"id",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"duration_minutes",
	"generated_slots",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации слотов.
// Таблица хранит не более одной строки: уникальный столбец singleton всегда TRUE.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет конфигурацию, если другой ещё нет.
// Проверка и вставка атомарны: ON CONFLICT по singleton.
func (r *Repository) Create(ctx context.Context, cfg *domain.TimeSlotConfig) (*domain.TimeSlotConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(cfg.GeneratedSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal slots: %v", ErrEncodeSlots, err)
	}
	breakStart, breakEnd := breakColumns(cfg.BreakTime)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"start_time",
			"end_time",
			"break_start",
			"break_end",
			"duration_minutes",
			"generated_slots",
		).
		Values(
			cfg.StartTime,
			cfg.EndTime,
			breakStart,
			breakEnd,
			cfg.Duration,
			string(slots),
		).
		Suffix("ON CONFLICT (singleton) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// GetActive возвращает единственную конфигурацию
func (r *Repository) GetActive(ctx context.Context) (*domain.TimeSlotConfig, error) {
	return r.getOne(ctx, "GetActive", squirrel.Eq{"singleton": true})
}

// GetByID получает конфигурацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlotConfig, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.TimeSlotConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(where)

	// В транзакции блокируем строку, чтобы конфигурация не перегенерировалась под бронированием
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR SHARE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
	}

	return cfg, nil
}

// Update перезаписывает параметры и сгенерированные слоты
func (r *Repository) Update(ctx context.Context, cfg *domain.TimeSlotConfig) (*domain.TimeSlotConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(cfg.GeneratedSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal slots: %v", ErrEncodeSlots, err)
	}
	breakStart, breakEnd := breakColumns(cfg.BreakTime)

	query, args, err := psqlbuilder.Update(table).
		Set("start_time", cfg.StartTime).
		Set("end_time", cfg.EndTime).
		Set("break_start", breakStart).
		Set("break_end", breakEnd).
		Set("duration_minutes", cfg.Duration).
		Set("generated_slots", string(slots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cfg.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func breakColumns(b *domain.BreakTime) (sql.NullString, sql.NullString) {
	if b == nil {
		return sql.NullString{}, sql.NullString{}
	}
	return sql.NullString{String: b.Start.String(), Valid: true},
		sql.NullString{String: b.End.String(), Valid: true}
}

func scanConfig(row *sql.Row) (*domain.TimeSlotConfig, error) {
	var (
		cfg                  domain.TimeSlotConfig
		breakStart, breakEnd sql.NullString
		slots                []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&cfg.ID,
		&cfg.StartTime,
		&cfg.EndTime,
		&breakStart,
		&breakEnd,
		&cfg.Duration,
		&slots,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if breakStart.Valid && breakEnd.Valid {
		cfg.BreakTime = &domain.BreakTime{
			Start: types.TimeString(breakStart.String),
			End:   types.TimeString(breakEnd.String),
		}
	}

	if err := json.Unmarshal(slots, &cfg.GeneratedSlots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSlots, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
