package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// notExpired скрывает заказы с истекшим expires_at ещё до того, как их удалит sweeper
var notExpired = sq.Or{
	sq.Eq{"expires_at": nil},
	sq.Expr("expires_at > now()"),
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (string, error) {
	row, err := OrderFromEntity(o)
	if err != nil {
		return "", err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			// jsonb передаём строкой: lib/pq кодирует []byte как bytea
			row.ID, row.UserID, string(row.Items), string(row.Address), row.Amount,
			row.PaymentMethod, row.Payment, row.Status, row.Date, row.ExpiresAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	res, err := trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}
	// конкурентная вставка того же id ждёт коммита первой и ничего не вставляет
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return row.ID, entities.ErrOrderExists
	}
	return row.ID, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		Where(notExpired).
		MustSql()

	var row Order
	err := trm.ExecutorFrom(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row)
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, u entities.OrderUpdate) error {
	if u.Empty() {
		_, err := r.GetOrder(ctx, id)
		return err
	}

	q := r.qb.Update("orders").
		Where(sq.Eq{"id": id}).
		Where(notExpired)
	if u.Payment != nil {
		q = q.Set("payment", *u.Payment)
	}
	if u.Status != nil {
		q = q.Set("status", *u.Status)
	}
	if u.ClearExpiry {
		q = q.Set("expires_at", nil)
	}

	query, args := q.MustSql()
	res, err := trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return expectAffected(res)
}

// MarkPaid confirms payment and clears the expiry in one statement, so the
// sweeper either deletes the row first or never sees it as expired.
func (r *postgresRepo) MarkPaid(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("payment", true).
		Set("expires_at", nil).
		Where(sq.Eq{"id": id, "payment": false}).
		Where(notExpired).
		Suffix("RETURNING " + joinColumns()).
		MustSql()

	exec := trm.ExecutorFrom(ctx, r.db)

	var row Order
	err := exec.QueryRowxContext(ctx, query, args...).StructScan(&row)
	if err == nil {
		return OrderToEntity(row)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, fmt.Errorf("failed to mark order paid: %w", err)
	}

	// ни одна строка не обновилась: либо заказа нет, либо он уже оплачен
	existing, err := r.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.Payment {
		return existing, entities.ErrAlreadyPaid
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

// DeleteOrder removes an order that has not been confirmed paid.
func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id, "payment": false}).
		MustSql()

	res, err := trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return expectAffected(res)
}

func (r *postgresRepo) OrdersByUser(ctx context.Context, userID string, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		Where(notExpired).
		OrderBy("date DESC")

	if !filter.IncludeUnsettled {
		q = q.Where(sq.Or{
			sq.Eq{"payment": true},
			sq.Eq{"payment_method": string(entities.PaymentCOD)},
		})
	}

	query, args := q.MustSql()

	var rows []Order
	if err := trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select user orders: %w", err)
	}
	return OrdersToEntities(rows)
}

func (r *postgresRepo) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(notExpired).
		OrderBy("date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []Order
	if err := trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(rows)
}

// DeleteExpired removes unpaid orders whose expiry has elapsed and returns them.
func (r *postgresRepo) DeleteExpired(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"payment": false}).
		Where(sq.NotEq{"expires_at": nil}).
		Where(sq.Expr("expires_at <= now()")).
		Suffix("RETURNING " + joinColumns()).
		MustSql()

	rows, err := trm.ExecutorFrom(ctx, r.db).QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired orders: %w", err)
	}
	defer rows.Close()

	var deleted []Order
	for rows.Next() {
		var row Order
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan expired order: %w", err)
		}
		deleted = append(deleted, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expired orders: %w", err)
	}
	return OrdersToEntities(deleted)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func joinColumns() string {
	return strings.Join(orderColumns, ", ")
}
