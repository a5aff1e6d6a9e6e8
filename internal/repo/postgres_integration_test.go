//go:build integration

package repo_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(dsn, config.Postgres{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	// повторный прогон миграций не должен падать
	require.NoError(t, postgres.Migrate(ctx, db))
	return db
}

func newOrder(t *testing.T, userID string, method entities.PaymentMethod, expiresAt *time.Time) entities.Order {
	t.Helper()

	item, err := entities.ParseItem(json.RawMessage(`{"_id":"p1","name":"Shirt","price":49.5,"size":"M","quantity":2,"image":["a.png"]}`))
	require.NoError(t, err)

	return entities.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         []entities.Item{item},
		Address:       entities.Address{"city": "Pune", "zip": "411001"},
		Amount:        decimal.RequireFromString("109"),
		PaymentMethod: method,
		Payment:       false,
		Status:        entities.DefaultStatus,
		Date:          time.Now().UTC().Truncate(time.Microsecond),
		ExpiresAt:     expiresAt,
	}
}

func TestPostgresRepo(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	orders := repo.NewPostgresRepo(db)
	carts := repo.NewCartsRepo(db)
	txManager := trm.NewManager(db)

	t.Run("create never overwrites and round-trips the snapshot", func(t *testing.T) {
		o := newOrder(t, "user-1", entities.PaymentCOD, nil)

		id, err := orders.CreateOrder(ctx, o)
		require.NoError(t, err)
		_, err = orders.CreateOrder(ctx, o)
		require.ErrorIs(t, err, entities.ErrOrderExists)

		got, err := orders.GetOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, o.UserID, got.UserID)
		assert.True(t, o.Amount.Equal(got.Amount))
		assert.Equal(t, "Pune", got.Address["city"])
		require.Len(t, got.Items, 1)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.Contains(t, string(got.Items[0].Snapshot), `"image"`)
	})

	t.Run("concurrent create waits for the first commit", func(t *testing.T) {
		o := newOrder(t, "user-7", entities.PaymentRazorpay, nil)
		second := make(chan error, 1)

		err := txManager.Do(ctx, func(txCtx context.Context) error {
			if _, err := orders.CreateOrder(txCtx, o); err != nil {
				return err
			}
			go func() {
				_, err := orders.CreateOrder(ctx, o)
				second <- err
			}()
			// вторая вставка висит на блокировке ключа до коммита
			select {
			case err := <-second:
				return fmt.Errorf("second insert finished before commit: %v", err)
			case <-time.After(200 * time.Millisecond):
				return nil
			}
		})
		require.NoError(t, err)
		assert.ErrorIs(t, <-second, entities.ErrOrderExists)
	})

	t.Run("mark paid converges", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		o := newOrder(t, "user-2", entities.PaymentStripe, &expires)
		_, err := orders.CreateOrder(ctx, o)
		require.NoError(t, err)

		paid, err := orders.MarkPaid(ctx, o.ID)
		require.NoError(t, err)
		assert.True(t, paid.Payment)
		assert.Nil(t, paid.ExpiresAt)

		again, err := orders.MarkPaid(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrAlreadyPaid)
		assert.True(t, again.Payment)

		_, err = orders.MarkPaid(ctx, uuid.NewString())
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)

		err = orders.DeleteOrder(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound, "paid orders are never deleted")
	})

	t.Run("expired orders are hidden and swept", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		o := newOrder(t, "user-3", entities.PaymentStripe, &past)
		_, err := orders.CreateOrder(ctx, o)
		require.NoError(t, err)

		_, err = orders.GetOrder(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)

		_, err = orders.MarkPaid(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)

		deleted, err := orders.DeleteExpired(ctx)
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, o.ID, deleted[0].ID)
	})

	t.Run("history shows settled orders only", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		cod := newOrder(t, "user-4", entities.PaymentCOD, nil)
		pending := newOrder(t, "user-4", entities.PaymentStripe, &expires)
		for _, o := range []entities.Order{cod, pending} {
			_, err := orders.CreateOrder(ctx, o)
			require.NoError(t, err)
		}

		history, err := orders.OrdersByUser(ctx, "user-4", entities.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, cod.ID, history[0].ID)

		all, err := orders.OrdersByUser(ctx, "user-4", entities.OrderFilter{IncludeUnsettled: true})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		status := "Shipped"
		require.NoError(t, orders.UpdateOrder(ctx, cod.ID, entities.OrderUpdate{Status: &status}))
		got, err := orders.GetOrder(ctx, cod.ID)
		require.NoError(t, err)
		assert.Equal(t, "Shipped", got.Status)

		listed, err := orders.ListOrders(ctx, 100, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(listed), 3)
	})

	t.Run("cart is cleared with the order in one transaction", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO users (id, cart_data) VALUES ('user-5', '{"p1": {"M": 2}}')`)
		require.NoError(t, err)

		o := newOrder(t, "user-5", entities.PaymentCOD, nil)
		err = txManager.Do(ctx, func(ctx context.Context) error {
			if _, err := orders.CreateOrder(ctx, o); err != nil {
				return err
			}
			return carts.ClearCart(ctx, o.UserID)
		})
		require.NoError(t, err)

		var cart string
		require.NoError(t, db.GetContext(ctx, &cart, `SELECT cart_data::text FROM users WHERE id = 'user-5'`))
		assert.Equal(t, "{}", cart)

		assert.NoError(t, carts.ClearCart(ctx, "unknown-user"))
	})

	t.Run("rollback keeps the cart", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO users (id, cart_data) VALUES ('user-6', '{"p1": {"M": 1}}')`)
		require.NoError(t, err)

		o := newOrder(t, "user-6", entities.PaymentCOD, nil)
		failure := errors.New("boom")
		err = txManager.Do(ctx, func(ctx context.Context) error {
			if err := carts.ClearCart(ctx, o.UserID); err != nil {
				return err
			}
			if _, err := orders.CreateOrder(ctx, o); err != nil {
				return err
			}
			return failure
		})
		require.ErrorIs(t, err, failure)

		var cart string
		require.NoError(t, db.GetContext(ctx, &cart, `SELECT cart_data::text FROM users WHERE id = 'user-6'`))
		assert.NotEqual(t, "{}", cart)

		_, err = orders.GetOrder(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
