package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo хранит оформленные заказы в PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет заказ в транзакции из контекста (вместе с outbox-событием).
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := o.conv.ToModel(order)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (number, email, items, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.Number,
		model.Email,
		model.Items,
		model.Total,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: order %s already exists", whereami.WhereAmI(), order.Number)
		}

		return nil, fmt.Errorf("%s: failed to insert order: %w", whereami.WhereAmI(), err)
	}

	res, err := o.conv.ToEntity(model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return res, nil
}

// ListByEmail возвращает историю заказов аккаунта, новые первыми.
func (o *OrderRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := `
		SELECT id, number, email, items, total, created_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := o.pool.Query(ctx, query, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query orders: %w", whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID,
			&model.Number,
			&model.Email,
			&model.Items,
			&model.Total,
			&model.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: failed to scan order: %w", whereami.WhereAmI(), err)
		}

		order, err := o.conv.ToEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return orders, nil
}
