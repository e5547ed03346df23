package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/psqlbuilder"
)

// Repository читает товары, услуги и налоги.
// Сами справочники ведёт CRUD-часть магазина; здесь только чтение и списание остатков.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProduct получает товар вместе с названием бренда
func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.name",
		"COALESCE(b.name, '')",
		"p.price",
		"p.stock",
	).
		From("products p").
		LeftJoin("brands b ON b.id = p.brand_id").
		Where(squirrel.Eq{"p.id": id, "p.is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProduct - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Product
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.BrandName,
		&p.Price,
		&p.Stock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProduct - scan product: %w", ErrExecQuery, err)
	}

	return &p, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price").
		From("services").
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %w", ErrExecQuery, err)
	}

	return &s, nil
}

// ApplyStockDelta атомарно меняет остаток на delta одним UPDATE и возвращает новый остаток.
// Уход в минус допустим.
func (r *Repository) ApplyStockDelta(ctx context.Context, productID int64, delta int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("stock", squirrel.Expr("stock + ?", delta)).
		Where(squirrel.Eq{"id": productID}).
		Suffix("RETURNING stock").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ApplyStockDelta - build update query: %v", ErrBuildQuery, err)
	}

	var stock int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: ApplyStockDelta - execute update: %w", ErrExecQuery, err)
	}

	return stock, nil
}

// GetCurrentTax возвращает последний действующий налог
func (r *Repository) GetCurrentTax(ctx context.Context) (*domain.Tax, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "percentage").
		From("taxes").
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrentTax - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tax
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Percentage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrentTax - scan tax: %w", ErrExecQuery, err)
	}

	return &t, nil
}
