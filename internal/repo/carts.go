package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCartsRepo(db *sqlx.DB) *cartsRepo {
	return &cartsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ClearCart empties the user's cart. Clearing an empty cart or an unknown
// user is not an error.
func (r *cartsRepo) ClearCart(ctx context.Context, userID string) error {
	query, args := r.qb.Update("users").
		Set("cart_data", sq.Expr("'{}'::jsonb")).
		Where(sq.Eq{"id": userID}).
		MustSql()

	if _, err := trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
